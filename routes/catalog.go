package routes

import (
	productcontroller "github.com/Mdken1/storefront-api/controllers/product"
	"github.com/Mdken1/storefront-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers category and product endpoints. Reads are
// public; mutations sit behind the admin API-key gate.
func SetupCatalogRoutes(api *gin.RouterGroup, db *gorm.DB) {
	categories := api.Group("/categories")
	{
		categories.GET("", productcontroller.GetAllCategories(db))
		categories.POST("", middleware.ValidateAPIKey, productcontroller.CreateCategory(db))
	}

	products := api.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/:id", productcontroller.GetProductByID(db))
		products.POST("", middleware.ValidateAPIKey, productcontroller.CreateProduct(db))
		products.PUT("/:id", middleware.ValidateAPIKey, productcontroller.UpdateProduct(db))
		products.DELETE("/:id", middleware.ValidateAPIKey, productcontroller.DeleteProduct(db))
	}
}
