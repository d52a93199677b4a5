package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saransh-debugs/PixelAlchemy/pkg/logger"
)

// Logger returns a gin.HandlerFunc (middleware) that logs requests using zap
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		requestID := c.Request.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
			c.Header("X-Request-ID", requestID)
		}
		c.Set("RequestID", requestID)

		c.Next()

		latency := time.Since(start)

		if len(c.Errors) > 0 {
			for _, e := range c.Errors.Errors() {
				logger.Log.Error(e, zap.String("request_id", requestID))
			}
			return
		}

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.String("user-agent", c.Request.UserAgent()),
			zap.Duration("latency", latency),
		}

		if c.Writer.Status() >= 500 {
			logger.Log.Error("Server Error", fields...)
		} else if c.Writer.Status() >= 400 {
			logger.Log.Warn("Client Error", fields...)
		} else {
			logger.Log.Info("Request", fields...)
		}
	}
}
