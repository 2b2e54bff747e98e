package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every failed request. The static client reads
// the "error" key, so the human message lives there.
type ErrorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// AuthResult is the body of login style endpoints, which report failures with
// success=false instead of an error status.
type AuthResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Token    string `json:"token,omitempty"`
	Employee any    `json:"employee,omitempty"`
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.AbortWithStatusJSON(status, ErrorBody{
		Error:   message,
		Code:    errorCode,
		Details: details,
	})
}

func Auth(c *gin.Context, status int, result AuthResult) {
	c.JSON(status, result)
}
