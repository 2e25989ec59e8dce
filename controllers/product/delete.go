package productcontroller

import (
	"errors"
	"net/http"

	"github.com/Mdken1/storefront-api/cache"
	"github.com/Mdken1/storefront-api/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteProduct removes a product and any cart rows still pointing at it.
// URL param: /api/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if err := storage.DeleteProduct(db, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting product: " + err.Error()})
			}
			return
		}

		cache.InvalidateProducts(id)
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
