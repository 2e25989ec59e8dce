package productcontroller

import (
	"net/http"

	"github.com/Mdken1/storefront-api/cache"
	"github.com/Mdken1/storefront-api/models"
	"github.com/Mdken1/storefront-api/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProducts lists the catalog. Query params categoryId, search and
// featured combine with AND; the unfiltered listing is served from Redis
// when available.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters := storage.ProductFilters{
			CategoryID: c.Query("categoryId"),
			Search:     c.Query("search"),
			Featured:   c.Query("featured") == "true",
		}
		unfiltered := filters.CategoryID == "" && filters.Search == "" && !filters.Featured

		if unfiltered {
			var cached []models.Product
			if cache.GetJSON(c.Request.Context(), cache.ProductListKey, &cached) {
				c.JSON(http.StatusOK, cached)
				return
			}
		}

		products, err := storage.GetProducts(db, filters)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching products: " + err.Error()})
			return
		}

		if unfiltered {
			cache.SetJSON(cache.ProductListKey, products, cache.ProductTTL)
		}
		c.JSON(http.StatusOK, products)
	}
}
