package response

import "github.com/gin-gonic/gin"

// Message writes a `{message}` body, the shape used by the reference-data and
// trip endpoints for both errors and bare confirmations.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// Error writes an `{error}` body, the shape the seat endpoints use for
// storage failures.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}
