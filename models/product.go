package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Price       Numeric   `gorm:"type:numeric(10,2);not null" json:"price"`
	SalePrice   *Numeric  `gorm:"type:numeric(10,2)" json:"salePrice"`
	CategoryID  *string   `gorm:"size:36;index" json:"categoryId"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category"`
	Stock       Units     `gorm:"default:0" json:"stock"`
	Featured    bool      `gorm:"default:false" json:"featured"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// UnitPrice is the price a buyer pays right now: the sale price when one is
// set, the regular price otherwise.
func (p *Product) UnitPrice() Numeric {
	if p.SalePrice != nil && *p.SalePrice != "" {
		return *p.SalePrice
	}
	return p.Price
}
