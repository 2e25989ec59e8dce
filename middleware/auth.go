package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextUserID is the gin context key holding the token-derived user id.
const ContextUserID = "user_id"

func parseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", errors.New("token carries no user id")
	}
	return userID, nil
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// ValidateToken requires a valid JWT and stores the user id in the context.
func ValidateToken(c *gin.Context) {
	tokenString := bearerToken(c)
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}
	userID, err := parseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	c.Set(ContextUserID, userID)
	c.Next()
}

// ResolveUser is the optional variant: a valid token sets the user id, an
// absent or broken one leaves the request anonymous. Handlers prefer the
// token identity over a request-supplied userId when both are present.
func ResolveUser(c *gin.Context) {
	if tokenString := bearerToken(c); tokenString != "" {
		if userID, err := parseToken(tokenString); err == nil {
			c.Set(ContextUserID, userID)
		}
	}
	c.Next()
}

// TokenUserID returns the authenticated user id, falling back to the given
// request-supplied value for anonymous calls.
func TokenUserID(c *gin.Context, fallback string) string {
	if v, exists := c.Get(ContextUserID); exists {
		if id, ok := v.(string); ok && id != "" {
			return id
		}
	}
	return fallback
}
