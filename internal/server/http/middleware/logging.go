package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storeadmin/internal/domain/model"
)

// RequestLogger logs information about incoming requests using slog.
// Server errors are logged at ERROR, client errors at WARN.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", latency),
		}
		if val, ok := c.Get(SessionContextKey); ok {
			if session, ok := val.(*model.Session); ok {
				attrs = append(attrs, slog.String("session_id", session.ID))
			}
		}
		logger.LogAttrs(c.Request.Context(), level, "http request", attrs...)
	}
}
