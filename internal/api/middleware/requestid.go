package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/fishkit/internal/shared/id"
	"github.com/GriffinCanCode/fishkit/internal/shared/utils"
)

const (
	// RequestIDHeader carries the request ID in both directions
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key holding the request ID
	RequestIDKey = "request_id"
)

// RequestID tags every request with an ID. A well-formed incoming
// X-Request-ID is reused, anything else is replaced with a fresh req_ ULID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" || utils.ValidateID(reqID, "request id", true) != nil {
			reqID = id.NewRequestID().String()
		}

		c.Set(RequestIDKey, reqID)
		c.Header(RequestIDHeader, reqID)
		c.Next()
	}
}

// GetRequestID returns the ID set by RequestID, or "" outside that middleware.
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
