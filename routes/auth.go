package routes

import (
	"github.com/Mdken1/storefront-api/auth"
	userControllers "github.com/Mdken1/storefront-api/controllers/user"
	"github.com/Mdken1/storefront-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB) {
	api.POST("/auth/guest", auth.CreateGuestUser(db))
	api.GET("/me", middleware.ValidateToken, userControllers.GetMe(db))
}
