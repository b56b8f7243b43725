package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/catalog-service/internal/logger"
)

// RequestLogger returns a middleware that logs one structured line per
// request, leveled by status code. Requests to skipPaths are only logged
// when they fail.
func RequestLogger(skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		statusCode := c.Writer.Status()
		path := c.Request.URL.Path
		if _, ok := skip[path]; ok && statusCode < 400 {
			return
		}

		log := logger.FromContext(c.Request.Context())
		event := log.Info()
		switch {
		case statusCode >= 500:
			event = log.Error()
		case statusCode >= 400:
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Str("route", c.FullPath()).
			Int("status_code", statusCode).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Int("bytes", c.Writer.Size()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Msg("HTTP request")
	}
}
