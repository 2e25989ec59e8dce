package productcontroller

import (
	"net/http"

	"github.com/Mdken1/storefront-api/cache"
	"github.com/Mdken1/storefront-api/models"
	"github.com/Mdken1/storefront-api/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateProductInput struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       models.Numeric  `json:"price" binding:"required"`
	SalePrice   *models.Numeric `json:"salePrice"`
	CategoryID  *string         `json:"categoryId"`
	Stock       models.Units    `json:"stock"`
	Featured    bool            `json:"featured"`
	ImageURL    string          `json:"imageUrl"`
}

// CreateProduct adds a product to the catalog.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error creating product: " + err.Error()})
			return
		}

		if price, err := input.Price.Float64(); err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error creating product: price must be non-negative"})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			SalePrice:   input.SalePrice,
			CategoryID:  input.CategoryID,
			Stock:       input.Stock,
			Featured:    input.Featured,
			ImageURL:    input.ImageURL,
		}
		if err := storage.CreateProduct(db, &product); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error creating product: " + err.Error()})
			return
		}

		cache.InvalidateProducts(product.ID)
		c.JSON(http.StatusOK, product)
	}
}
