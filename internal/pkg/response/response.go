// Package response defines the JSON envelope shared by every endpoint:
// {"success":true,"data":...} or {"success":false,"error":{code,message}}.
// The error code is the contract the agent orchestrator branches on.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
