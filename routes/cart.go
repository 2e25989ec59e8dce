package routes

import (
	cartControllers "github.com/Mdken1/storefront-api/controllers/cart"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB) {
	cart := api.Group("/cart")
	{
		cart.GET("/:userId", cartControllers.GetCartItems(db))
		cart.POST("", cartControllers.AddToCart(db))
		cart.PUT("", cartControllers.UpdateCartItem(db))
		cart.DELETE("/:userId", cartControllers.ClearCart(db))
		cart.DELETE("/:userId/:productId", cartControllers.RemoveFromCart(db))
	}
}
