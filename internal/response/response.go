package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every error response. The message is meant
// to be rendered to the user directly.
type ErrorBody struct {
	Error   ErrCode           `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Success sends a successful JSON response with the given status code and
// body as-is. Response bodies are flat; clients read fields like token or
// message at the top level.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Message sends a bare {"message": ...} body. Used for domain-level
// outcomes like a result lookup miss, which is not an error status.
func Message(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, gin.H{"message": msg})
}

// Fail sends an error response with a typed code and its human-readable
// message.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, ErrorBody{Error: code, Message: GetMessage(code)})
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, ErrorBody{Error: code, Message: GetMessage(code), Fields: fields})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{Error: code, Message: GetMessage(code)})
}
