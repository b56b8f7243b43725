package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/catalog-service/internal/domain/dto"
	"github.com/guttosm/catalog-service/internal/i18n"
	"github.com/guttosm/catalog-service/internal/logger"
)

// ErrorMapping translates a sentinel error into an HTTP response.
type ErrorMapping struct {
	Err        error
	Status     int
	Code       string
	MessageKey string
}

// ErrorHandler returns a middleware that renders the last error attached with
// c.Error. Errors matching a mapping (via errors.Is) get its status and code;
// anything else becomes a 500. Nothing is written if the handler already
// wrote a response.
func ErrorHandler(mappings ...ErrorMapping) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status, code, key := http.StatusInternalServerError, dto.ErrCodeInternal, i18n.ErrKeyInternalError
		for _, m := range mappings {
			if errors.Is(err, m.Err) {
				status, code, key = m.Status, m.Code, m.MessageKey
				break
			}
		}

		log := logger.FromContext(c.Request.Context())
		event := log.Warn()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Err(err).
			Int("status_code", status).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if c.Writer.Written() {
			return
		}

		message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
		c.AbortWithStatusJSON(status, dto.NewError(code, message).WithRequestID(GetRequestID(c)))
	}
}
