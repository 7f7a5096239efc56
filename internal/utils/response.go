package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success writes the standard success envelope.
func Success(c *gin.Context, data gin.H) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   data,
	})
}

// Error writes the standard error envelope.
func Error(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{
		"status": "error",
		"error":  msg,
	})
}
