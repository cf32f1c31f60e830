package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoggingMiddleware mirrors the teacher's LoggingMiddleware, rewritten
// onto zap structured fields instead of log.Printf (SPEC_FULL.md §6
// ambient stack).
func LoggingMiddleware(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path = path + "?" + q
		}

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("path", path),
			zap.String("request_id", RequestID(c)),
		}
		if userID, ok := GetUserID(c); ok {
			fields = append(fields, zap.String("user_id", userID.String()))
		}

		log.Info("request", fields...)

		for _, err := range c.Errors {
			log.Error("handler error", zap.Error(err.Err), zap.String("request_id", RequestID(c)))
		}
	}
}
