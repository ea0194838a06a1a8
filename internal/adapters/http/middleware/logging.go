package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/disaster-response/internal/platform/logging"
)

// Logging writes one access line per request once it completes, at WARN for
// 4xx and ERROR for 5xx. Probes under /-/ and skipPrefixes are not logged.
func Logging(skipPrefixes ...string) gin.HandlerFunc {
	skip := append([]string{"/-/"}, skipPrefixes...)

	return func(c *gin.Context) {
		if hasAnyPrefix(c.Request.URL.Path, skip) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path += "?" + q
		}

		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("route", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.Int("bytes", c.Writer.Size()),
			slog.String("client_ip", c.ClientIP()),
		}
		if user := CurrentUser(c); user.Role != "" {
			attrs = append(attrs, slog.String("role", user.Role))
		}

		// Read the logger after the chain ran: auth may have added user_id.
		ctx := c.Request.Context()
		logging.FromContext(ctx).LogAttrs(ctx, level, "request completed", attrs...)
	}
}
