package userControllers

import (
	"errors"
	"net/http"

	"github.com/Mdken1/storefront-api/middleware"
	"github.com/Mdken1/storefront-api/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetMe returns the token-resolved user together with their cart and orders.
// GET /api/me (requires a valid JWT)
func GetMe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.TokenUserID(c, "")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		user, err := storage.GetUser(db, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching user: " + err.Error()})
			}
			return
		}

		cart, err := storage.GetCartItems(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching cart: " + err.Error()})
			return
		}
		orders, err := storage.GetOrders(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching orders: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":   user,
			"cart":   cart,
			"orders": orders,
		})
	}
}

// GetAllUsers lists users for the back office.
// GET /api/admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := storage.GetUsers(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching users: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}
