package routes

import (
	"github.com/Mdken1/storefront-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes wires every /api endpoint. All routes share the rate limiter
// and the optional token resolver; admin surfaces add the API-key gate.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	api.Use(middleware.RateLimiter(), middleware.ResolveUser)

	SetupAuthRoutes(api, db)
	SetupCatalogRoutes(api, db)
	SetupCartRoutes(api, db)
	SetupOrderRoutes(api, db)
	SetupPaymentRoutes(api, db)
	SetupAdminRoutes(api, db)
}
