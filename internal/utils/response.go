package utils

import "github.com/gin-gonic/gin"

// SuccessResponse writes data as a 200 JSON body.
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(200, data)
}

// CreatedResponse writes data as a 201 JSON body.
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(201, data)
}

// ErrorResponse writes a JSON error body with a message field.
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
