package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"github.com/jsamuelsen/disaster-response/internal/platform/config"
)

// CORS applies rs/cors to gin. Preflight requests are answered here and
// never reach a handler. Credentials are allowed so the browser UI can send
// the user header.
func CORS(cfg config.CORSConfig, userHeader string) gin.HandlerFunc {
	if userHeader == "" {
		userHeader = defaultUserHeader
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", userHeader, HeaderRequestID, HeaderCorrelationID},
		ExposedHeaders:   []string{HeaderRequestID, HeaderCorrelationID},
		AllowCredentials: true,
	})

	return func(ctx *gin.Context) {
		c.HandlerFunc(ctx.Writer, ctx.Request)

		if ctx.Request.Method == http.MethodOptions && ctx.GetHeader("Access-Control-Request-Method") != "" {
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
