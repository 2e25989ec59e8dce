package storage

import (
	"log"

	"github.com/Mdken1/storefront-api/models"
	"gorm.io/gorm"
)

func numeric(s string) models.Numeric { return models.Numeric(s) }

func numericPtr(s string) *models.Numeric {
	n := models.Numeric(s)
	return &n
}

// SeedDemoData loads a small demo catalog when the products table is empty.
// Gated behind SEED_DEMO so production databases are never touched.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{Name: "Electronics", Description: "Gadgets and devices", Icon: "laptop"},
		{Name: "Fashion", Description: "Clothing and accessories", Icon: "shirt"},
		{Name: "Home & Living", Description: "Furniture and decor", Icon: "home"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	products := []models.Product{
		{
			Name:        "Wireless Headphones",
			Description: "Over-ear headphones with active noise cancelling",
			Price:       numeric("129.99"),
			SalePrice:   numericPtr("99.99"),
			CategoryID:  &categories[0].ID,
			Stock:       25,
			Featured:    true,
			ImageURL:    "/images/headphones.jpg",
		},
		{
			Name:        "Smart Watch",
			Description: "Fitness tracking with a week of battery",
			Price:       numeric("199.99"),
			CategoryID:  &categories[0].ID,
			Stock:       12,
			Featured:    true,
			ImageURL:    "/images/smartwatch.jpg",
		},
		{
			Name:        "Denim Jacket",
			Description: "Classic fit, medium wash",
			Price:       numeric("59.99"),
			CategoryID:  &categories[1].ID,
			Stock:       40,
			ImageURL:    "/images/jacket.jpg",
		},
		{
			Name:        "Ceramic Table Lamp",
			Description: "Warm-light lamp with linen shade",
			Price:       numeric("44.50"),
			CategoryID:  &categories[2].ID,
			Stock:       18,
			ImageURL:    "/images/lamp.jpg",
		},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d categories and %d products", len(categories), len(products))
	return nil
}
