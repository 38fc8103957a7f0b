package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the JSON wrapper every endpoint returns. Success payloads
// carry Data; failures carry either Message (tasks, users, auth) or Error
// (notes, events) depending on which surface the endpoint belongs to.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// OK sends a 200 with data
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    data,
	})
}

// Created sends a 201 with data
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Data:    data,
	})
}

// OKWithMessage sends a 200 with a message and data
func OKWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Fail sends a failure with a message-keyed body
func Fail(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{
		Success: false,
		Message: message,
	})
}

// FailWithError sends a failure with an error-keyed body
func FailWithError(c *gin.Context, statusCode int, errMsg string) {
	c.JSON(statusCode, Envelope{
		Success: false,
		Error:   errMsg,
	})
}
