package routes

import (
	productcontroller "github.com/Mdken1/storefront-api/controllers/product"
	userControllers "github.com/Mdken1/storefront-api/controllers/user"
	"github.com/Mdken1/storefront-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the back-office extras: user listing and
// catalog excel round-trip.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB) {
	admin := api.Group("/admin")
	admin.Use(middleware.ValidateAPIKey)
	{
		admin.GET("/users", userControllers.GetAllUsers(db))

		productAdmin := admin.Group("/products")
		{
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(db))
		}
	}
}
