package cartControllers

import (
	"errors"
	"net/http"

	"github.com/Mdken1/storefront-api/middleware"
	"github.com/Mdken1/storefront-api/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartItemInput struct {
	UserID    string `json:"userId" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type CartUpdateInput struct {
	UserID    string `json:"userId" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// GET /api/cart/:userId
func GetCartItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.TokenUserID(c, c.Param("userId"))

		items, err := storage.GetCartItems(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching cart: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// AddToCart inserts or increments a cart row; repeat additions of the same
// product accumulate into one row.
// POST /api/cart
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error adding to cart: " + err.Error()})
			return
		}
		userID := middleware.TokenUserID(c, input.UserID)

		item, err := storage.AddToCart(db, userID, input.ProductID, input.Quantity)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Error adding to cart: " + err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// UpdateCartItem sets the quantity; anything at or below zero removes the
// row instead of storing a non-positive quantity.
// PUT /api/cart
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error updating cart: " + err.Error()})
			return
		}
		userID := middleware.TokenUserID(c, input.UserID)

		if input.Quantity <= 0 {
			if err := storage.RemoveFromCart(db, userID, input.ProductID); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Error updating cart: " + err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
			return
		}

		item, err := storage.UpdateCartItemQuantity(db, userID, input.ProductID, input.Quantity)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Error updating cart: " + err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /api/cart/:userId/:productId
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.TokenUserID(c, c.Param("userId"))
		productID := c.Param("productId")

		if err := storage.RemoveFromCart(db, userID, productID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error removing from cart: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
	}
}

// DELETE /api/cart/:userId
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.TokenUserID(c, c.Param("userId"))

		if err := storage.ClearCart(db, userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error clearing cart: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
