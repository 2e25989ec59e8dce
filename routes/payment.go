package routes

import (
	stripeControllers "github.com/Mdken1/storefront-api/controllers/stripe"
	"github.com/Mdken1/storefront-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupPaymentRoutes(api *gin.RouterGroup, db *gorm.DB) {
	api.POST("/create-payment-intent", stripeControllers.PaymentIntentHandler)

	// Webhook signature check is enforced only when STRIPE_WEBHOOK_SECRET
	// is configured.
	api.POST("/webhook/stripe",
		middleware.StripeWebhookAuth(),
		stripeControllers.WebhookHandler(db),
	)
}
