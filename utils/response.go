package utils

import "github.com/gin-gonic/gin"

// ErrorResponse writes the flat error envelope used across the API
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// SuccessResponse wraps data in the standard success envelope
func SuccessResponse(c *gin.Context, statusCode int, message string, data any) {
	c.JSON(statusCode, gin.H{
		"statusCode": statusCode,
		"message":    message,
		"data":       data,
	})
}
