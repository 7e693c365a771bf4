package response

import (
	"github.com/gin-gonic/gin"

	"github.com/promptopia/promptopia-api/internal/apperr"
)

// The API speaks bare JSON: entities and lists are written as-is with no
// envelope, and failures are a small {"error": ...} object. The request
// id travels in a header instead of the body.

const RequestIDHeader = "X-Request-ID"

// JSON writes a success payload.
func JSON(c *gin.Context, status int, data any) {
	setRequestID(c)
	c.JSON(status, data)
}

// Message writes a plain confirmation, e.g. after update or delete.
func Message(c *gin.Context, status int, msg string) {
	setRequestID(c)
	c.JSON(status, gin.H{"message": msg})
}

// Error writes a failure with an explicit status and optional details.
func Error(c *gin.Context, status int, msg string, details any) {
	setRequestID(c)
	body := gin.H{"error": msg}
	if details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}

// FromError maps a classified error (see apperr) onto the wire.
func FromError(c *gin.Context, err error) {
	Error(c, apperr.Status(err), apperr.Message(err), nil)
}

func setRequestID(c *gin.Context) {
	if id := c.GetString("request_id"); id != "" {
		c.Header(RequestIDHeader, id)
	}
}
