package logging

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	// JWT pattern: three base64 segments separated by dots
	jwtPattern = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)

	bearerPattern = regexp.MustCompile(`(?i)^bearer\s+.+$`)

	// Mapbox public and secret tokens
	mapboxTokenPattern = regexp.MustCompile(`^[ps]k\.eyJ[A-Za-z0-9_.-]+$`)

	// Google API keys
	googleKeyPattern = regexp.MustCompile(`^AIza[0-9A-Za-z_-]{35}$`)
)

// DefaultRedactOptions returns the masq options applied to every log record.
// Upstream credentials (Gemini key, Mapbox token, Bluesky app password and
// session JWTs) are covered by both field name and value shape.
func DefaultRedactOptions() []masq.Option {
	return []masq.Option{
		masq.WithFieldName("password"),
		masq.WithFieldName("app_password"),
		masq.WithFieldName("appPassword"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldName("apiKey"),
		masq.WithFieldName("api_key"),
		masq.WithFieldName("access_token"),
		masq.WithFieldName("accessJwt"),
		masq.WithFieldName("refreshJwt"),
		masq.WithFieldName("authorization"),
		masq.WithFieldName("cookie"),
		masq.WithFieldName("database_url"),

		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),

		masq.WithRegex(jwtPattern),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(mapboxTokenPattern),
		masq.WithRegex(googleKeyPattern),
	}
}

// NewReplaceAttr creates a slog ReplaceAttr function that redacts secrets.
// Extra options extend DefaultRedactOptions.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	allOpts := append(DefaultRedactOptions(), opts...)
	return masq.New(allOpts...)
}

// redactingHandler applies a ReplaceAttr function in front of handlers that
// do not support one.
type redactingHandler struct {
	slog.Handler
	replace func([]string, slog.Attr) slog.Attr
}

func (h *redactingHandler) Handle(ctx context.Context, r slog.Record) error { //nolint:gocritic // slog.Handler interface requires value
	clean := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		clean.AddAttrs(h.replace(nil, a))
		return true
	})

	return h.Handler.Handle(ctx, clean)
}

func (h *redactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	cleaned := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		cleaned[i] = h.replace(nil, a)
	}

	return &redactingHandler{Handler: h.Handler.WithAttrs(cleaned), replace: h.replace}
}

func (h *redactingHandler) WithGroup(name string) slog.Handler {
	return &redactingHandler{Handler: h.Handler.WithGroup(name), replace: h.replace}
}
