package utils

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every non-2xx response.
type ErrorBody struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// SuccessResponse writes the payload as-is; the dashboard consumes bare records and arrays.
func SuccessResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Message: message})
}

// ValidationErrorResponse writes a 400 with one entry per offending field.
func ValidationErrorResponse(c *gin.Context, statusCode int, message string, details []FieldError) {
	c.JSON(statusCode, ErrorBody{
		Message: message,
		Errors:  details,
	})
}
