package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, reusing the caller's when given.
func RequestID(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}

	c.Set("requestID", id)
	c.Writer.Header().Set(requestIDHeader, id)
	c.Next()
}

func CurrentRequestID(c *gin.Context) string {
	return c.GetString("requestID")
}

// AccessLog logs one line per request.
func AccessLog(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Infow("Request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"request_id", CurrentRequestID(c),
		)
	}
}
