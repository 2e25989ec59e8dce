package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Mdken1/storefront-api/middleware"
	"github.com/Mdken1/storefront-api/models"
	"github.com/Mdken1/storefront-api/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderItemInput struct {
	ProductID string         `json:"productId" binding:"required"`
	Quantity  int            `json:"quantity" binding:"required,min=1"`
	Price     models.Numeric `json:"price" binding:"required"`
}

type CreateOrderRequest struct {
	UserID          string           `json:"userId" binding:"required"`
	Total           models.Numeric   `json:"total" binding:"required"`
	Status          string           `json:"status"`
	ShippingAddress string           `json:"shippingAddress"`
	Items           []OrderItemInput `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GET /api/orders?userId=...
func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.TokenUserID(c, c.Query("userId"))

		orders, err := storage.GetOrders(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching orders: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/:id
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := storage.GetOrder(db, c.Param("id"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching order: " + err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// CreateOrder writes the order and its line items atomically. Item prices
// arrive from the caller and are stored as the purchase-time snapshot.
// POST /api/orders
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error creating order: " + err.Error()})
			return
		}

		status := models.OrderStatusPending
		if req.Status != "" {
			parsed, err := models.ParseOrderStatus(req.Status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Error creating order: " + err.Error()})
				return
			}
			status = parsed
		}

		order := models.Order{
			UserID:          middleware.TokenUserID(c, req.UserID),
			Total:           req.Total,
			Status:          status,
			ShippingAddress: req.ShippingAddress,
			CreatedAt:       time.Now(),
		}
		items := make([]models.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			})
		}

		created, err := storage.CreateOrderWithItems(db, &order, items)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error creating order: " + err.Error()})
			return
		}

		broadcastOrderEvent("order_created", created)
		c.JSON(http.StatusOK, created)
	}
}

// PUT /api/orders/:id/status
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error updating order status: " + err.Error()})
			return
		}

		status, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error updating order status: " + err.Error()})
			return
		}

		order, err := storage.UpdateOrderStatus(db, c.Param("id"), status)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Error updating order status: " + err.Error()})
			}
			return
		}

		broadcastOrderEvent("order_status_changed", order)
		c.JSON(http.StatusOK, order)
	}
}
