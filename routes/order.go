package routes

import (
	orderControllers "github.com/Mdken1/storefront-api/controllers/order"
	"github.com/Mdken1/storefront-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orders := api.Group("/orders")
	{
		orders.GET("", orderControllers.GetOrders(db))
		orders.GET("/:id", orderControllers.GetOrderByID(db))
		orders.POST("", orderControllers.CreateOrder(db))
		orders.PUT("/:id/status", middleware.ValidateAPIKey, orderControllers.UpdateOrderStatus(db))
	}

	// Websocket lives outside /orders so the static segment cannot collide
	// with the :id wildcard in the GET tree.
	api.GET("/ws/orders", orderControllers.OrderWebSocket)
}
