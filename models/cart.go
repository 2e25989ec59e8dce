package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem keeps one row per (user, product) pair; repeat additions increment
// the quantity of the existing row.
type CartItem struct {
	ID        string   `gorm:"primaryKey;size:36" json:"id"`
	UserID    string   `gorm:"size:36;not null;uniqueIndex:idx_cart_user_product" json:"userId"`
	ProductID string   `gorm:"size:36;not null;uniqueIndex:idx_cart_user_product" json:"productId"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

func (i *CartItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.AddedAt.IsZero() {
		i.AddedAt = time.Now()
	}
	return nil
}
