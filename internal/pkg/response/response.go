package response

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope:
// {"success": bool, "data": T?, "error": string?}.

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}

// AbortError ends middleware chains with the error envelope.
func AbortError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}
