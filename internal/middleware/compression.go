package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression returns a gzip middleware. Responses for excludedPaths
// (for example /metrics, which Prometheus negotiates itself) are left as is.
func Compression(excludedPaths ...string) gin.HandlerFunc {
	if len(excludedPaths) == 0 {
		return gzip.Gzip(gzip.DefaultCompression)
	}
	return gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths(excludedPaths))
}
