package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/catalog-service/internal/domain/dto"
	"github.com/guttosm/catalog-service/internal/i18n"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
)

// APIKeyAuth returns a middleware that requires one of validKeys in the
// X-API-Key header or the api_key query parameter. With no keys configured
// every request is rejected, so protected routes are never left open by
// accident.
func APIKeyAuth(validKeys []string) gin.HandlerFunc {
	keys := make([][]byte, 0, len(validKeys))
	for _, k := range validKeys {
		if k != "" {
			keys = append(keys, []byte(k))
		}
	}

	return func(c *gin.Context) {
		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		if key == "" {
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
			return
		}
		if !matchesAny([]byte(key), keys) {
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
			return
		}

		c.Next()
	}
}

// matchesAny compares key against every candidate in constant time.
func matchesAny(key []byte, candidates [][]byte) bool {
	found := 0
	for _, k := range candidates {
		found |= subtle.ConstantTimeCompare(key, k)
	}
	return found == 1
}

func abortUnauthorized(c *gin.Context, messageKey string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewError(dto.ErrCodeUnauthorized, message).WithRequestID(GetRequestID(c)))
}
