package productcontroller

import (
	"net/http"

	"github.com/Mdken1/storefront-api/models"
	"github.com/Mdken1/storefront-api/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateCategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// GetAllCategories returns all categories.
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := storage.GetCategories(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching categories: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error creating category: " + err.Error()})
			return
		}

		category := models.Category{
			Name:        input.Name,
			Description: input.Description,
			Icon:        input.Icon,
		}
		if err := storage.CreateCategory(db, &category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error creating category: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, category)
	}
}
