package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"os"
	"time"

	"github.com/Mdken1/storefront-api/models"
	"github.com/Mdken1/storefront-api/storage"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const guestTokenTTL = 24 * time.Hour

// CreateGuestUser mints an anonymous user row plus a JWT the storefront can
// present on later requests. This is the only identity the system issues; no
// password credentials exist anywhere.
//
// POST /api/auth/guest
func CreateGuestUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		suffix := generateRandomString(8)
		user := models.User{
			Username: "guest_" + suffix,
			Email:    "guest_" + suffix + "@guest.local",
		}

		if err := storage.CreateUser(db, &user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest user"})
			return
		}

		token, expiresAt, err := issueToken(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":      user,
			"token":     token,
			"expiresAt": expiresAt,
		})
	}
}

func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_guest"
	}
	return hex.EncodeToString(bytes)
}

func issueToken(userID string) (string, time.Time, error) {
	expiresAt := time.Now().Add(guestTokenTTL)
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    "guest",
		"exp":     expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	return signed, expiresAt, err
}
