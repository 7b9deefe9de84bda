package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response
type Response struct {
	OK        bool        `json:"ok"`
	Message   string      `json:"message,omitempty"`
	Error     string      `json:"error,omitempty"`
	Errors    interface{} `json:"errors,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		OK:        true,
		Message:   message,
		Data:      data,
		RequestID: c.GetString(RequestIDKey),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, details interface{}) {
	c.JSON(code, Response{
		OK:        false,
		Error:     message,
		Errors:    details,
		RequestID: c.GetString(RequestIDKey),
	})
}

// RequestIDKey is the gin context key holding the request id
const RequestIDKey = "RequestID"
