package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KeyRequestID is both the header and the context key for the id.
const KeyRequestID = "X-Request-ID"

// RequestID honors an inbound X-Request-ID or mints one, echoing it on
// the response so callers can correlate against the access log.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get(KeyRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set(KeyRequestID, rid)
		c.Set(KeyRequestID, rid)
		c.Next()
	}
}
