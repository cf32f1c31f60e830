package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware mirrors the teacher's CORSMiddleware, with the allowed
// origin list read from configuration instead of hardcoded.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	corsHandler := cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{
			"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS",
		},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Content-Length", "Accept",
			"Accept-Encoding", "Authorization", "X-Requested-With", "X-Request-ID",
		},
		ExposeHeaders: []string{
			"Content-Length", "Content-Type", "X-Request-ID",
		},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})

	return func(c *gin.Context) {
		if c.GetHeader("Origin") == "" {
			c.Next()
			return
		}
		corsHandler(c)
	}
}
