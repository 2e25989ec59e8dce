package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// ValidateAPIKey gates admin endpoints behind the X-API-KEY header. When
// ADMIN_API_KEY is not configured the gate is open (local development).
func ValidateAPIKey(c *gin.Context) {
	expected := os.Getenv("ADMIN_API_KEY")
	if expected == "" {
		c.Next()
		return
	}
	if c.GetHeader("X-API-KEY") != expected {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API key"})
		c.Abort()
		return
	}
	c.Next()
}
