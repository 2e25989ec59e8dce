package productcontroller

import (
	"errors"
	"net/http"

	"github.com/Mdken1/storefront-api/cache"
	"github.com/Mdken1/storefront-api/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateProduct applies a partial field patch; absent fields stay untouched.
// URL param: /api/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var patch storage.ProductPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error updating product: " + err.Error()})
			return
		}

		product, err := storage.UpdateProduct(db, id, patch)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Error updating product: " + err.Error()})
			}
			return
		}

		cache.InvalidateProducts(id)
		c.JSON(http.StatusOK, product)
	}
}
