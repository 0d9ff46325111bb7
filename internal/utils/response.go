package utils

import (
	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every endpoint responds with. Data is present on
// success, ErrorCode and ErrorMsg on failure; the two are mutually exclusive.
type APIResponse[T any] struct {
	Success   bool   `json:"success"`
	Data      T      `json:"data,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
	ErrorMsg  string `json:"error_msg,omitempty"`
}

// RespondSuccess writes a success envelope with the given payload.
func RespondSuccess[T any](c *gin.Context, statusCode int, data T) {
	c.JSON(statusCode, APIResponse[T]{
		Success: true,
		Data:    data,
	})
}

// RespondError writes an error envelope and aborts the handler chain so later
// middleware cannot write a second body.
func RespondError(c *gin.Context, status int, errorCode, errorMsg string) {
	c.AbortWithStatusJSON(status, APIResponse[any]{
		Success:   false,
		ErrorCode: errorCode,
		ErrorMsg:  errorMsg,
	})
}
