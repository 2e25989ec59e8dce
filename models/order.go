package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // placed, awaiting payment confirmation
	OrderStatusProcessing OrderStatus = "processing" // payment confirmed, being prepared
	OrderStatusShipped    OrderStatus = "shipped"    // handed to the carrier
	OrderStatusDelivered  OrderStatus = "delivered"  // received by the customer
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

// ParseOrderStatus maps a free-form string onto the closed status set.
// Transitions between statuses are unrestricted; only membership is checked.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToLower(s)) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusProcessing:
		return OrderStatusProcessing, nil
	case OrderStatusShipped:
		return OrderStatusShipped, nil
	case OrderStatusDelivered:
		return OrderStatusDelivered, nil
	case OrderStatusCancelled:
		return OrderStatusCancelled, nil
	default:
		return "", ErrInvalidOrderStatus
	}
}

type Order struct {
	ID              string      `gorm:"primaryKey;size:36" json:"id"`
	UserID          string      `gorm:"size:36;not null;index" json:"userId"`
	Total           Numeric     `gorm:"type:numeric(10,2);not null" json:"total"`
	Status          OrderStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	ShippingAddress string      `json:"shippingAddress"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt       time.Time   `json:"createdAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderItem snapshots quantity and unit price at purchase time; later product
// price edits never touch it.
type OrderItem struct {
	ID        string   `gorm:"primaryKey;size:36" json:"id"`
	OrderID   string   `gorm:"size:36;not null;index" json:"orderId"`
	ProductID string   `gorm:"size:36;not null" json:"productId"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	Price     Numeric  `gorm:"type:numeric(10,2);not null" json:"price"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
