package storage

import (
	"github.com/Mdken1/storefront-api/models"
	"gorm.io/gorm"
)

// ProductFilters narrow the catalog listing; set fields combine with AND.
type ProductFilters struct {
	CategoryID string
	Search     string // case-insensitive substring match on name
	Featured   bool
}

func GetProducts(db *gorm.DB, filters ProductFilters) ([]models.Product, error) {
	query := db.Model(&models.Product{}).Preload("Category")

	if filters.CategoryID != "" {
		query = query.Where("category_id = ?", filters.CategoryID)
	}
	if filters.Search != "" {
		// LOWER/LIKE instead of ILIKE so the same query runs on Postgres and sqlite
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filters.Search+"%")
	}
	if filters.Featured {
		query = query.Where("featured = ?", true)
	}

	// initialized so an empty catalog serializes as [] rather than null
	products := []models.Product{}
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func GetProduct(db *gorm.DB, id string) (*models.Product, error) {
	var product models.Product
	if err := db.Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func CreateProduct(db *gorm.DB, product *models.Product) error {
	return db.Create(product).Error
}

// ProductPatch is a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Price       *models.Numeric `json:"price"`
	SalePrice   *models.Numeric `json:"salePrice"`
	CategoryID  *string         `json:"categoryId"`
	Stock       *models.Units   `json:"stock"`
	Featured    *bool           `json:"featured"`
	ImageURL    *string         `json:"imageUrl"`
}

func UpdateProduct(db *gorm.DB, id string, patch ProductPatch) (*models.Product, error) {
	var product models.Product
	if err := db.First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.SalePrice != nil {
		product.SalePrice = patch.SalePrice
	}
	if patch.CategoryID != nil {
		product.CategoryID = patch.CategoryID
	}
	if patch.Stock != nil {
		product.Stock = *patch.Stock
	}
	if patch.Featured != nil {
		product.Featured = *patch.Featured
	}
	if patch.ImageURL != nil {
		product.ImageURL = *patch.ImageURL
	}

	if err := db.Save(&product).Error; err != nil {
		return nil, err
	}
	return GetProduct(db, id)
}

// DeleteProduct removes the product together with any cart rows still
// referencing it, so stale cart entries cannot outlive the catalog. Order
// items keep their snapshots and are left alone.
func DeleteProduct(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Product{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
