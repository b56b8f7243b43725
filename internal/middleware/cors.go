package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// DefaultCORSOrigins are allowed when none are configured.
var DefaultCORSOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

// CORS returns the cross-origin policy for the storefront front end.
// Content-Disposition is exposed so browsers can read the CSV file name.
func CORS(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = DefaultCORSOrigins
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Encoding", "Accept-Language", "X-API-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
