package storage

import (
	"github.com/Mdken1/storefront-api/models"
	"gorm.io/gorm"
)

func GetCategories(db *gorm.DB) ([]models.Category, error) {
	categories := []models.Category{}
	if err := db.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func GetCategory(db *gorm.DB, id string) (*models.Category, error) {
	var category models.Category
	if err := db.First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func CreateCategory(db *gorm.DB, category *models.Category) error {
	return db.Create(category).Error
}
