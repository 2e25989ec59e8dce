package productcontroller

import (
	"errors"
	"net/http"

	"github.com/Mdken1/storefront-api/cache"
	"github.com/Mdken1/storefront-api/models"
	"github.com/Mdken1/storefront-api/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProductByID returns a single product with its category view.
// URL param: /api/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var cached models.Product
		if cache.GetJSON(c.Request.Context(), cache.ProductKeyPrefix+id, &cached) {
			c.JSON(http.StatusOK, cached)
			return
		}

		product, err := storage.GetProduct(db, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching product: " + err.Error()})
			}
			return
		}

		cache.SetJSON(cache.ProductKeyPrefix+id, product, cache.ProductTTL)
		c.JSON(http.StatusOK, product)
	}
}
