package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Respond writes the uniform success envelope. Report-specific keys go in
// extra; "success" and "message" are always set.
func Respond(c *gin.Context, message string, extra gin.H) {
	body := gin.H{"success": true, "message": message}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// RespondList wraps a collection with its count. An empty collection is a
// success with count 0, never an error.
func RespondList(c *gin.Context, message string, data interface{}, count int64) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    data,
		"count":   count,
	})
}

func RespondData(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func RespondCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}
