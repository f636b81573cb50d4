package routes

import (
	"github.com/gin-gonic/gin"
	paymentControllers "github.com/iamshreyas-06/ARTISAN-SPACE-sub001/controllers/payment"
	"github.com/iamshreyas-06/ARTISAN-SPACE-sub001/middleware"
	"gorm.io/gorm"
)

func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB) {
	payment := r.Group("/payment")
	{
		// Hosted checkout session for a placed order
		payment.POST("/session",
			middleware.ValidateToken,
			paymentControllers.CreateCheckoutSession(db),
		)

		// Webhook endpoint: middleware handles sandbox/prod verification
		payment.POST("/webhook",
			middleware.StripeWebhookAuth(),
			paymentControllers.WebhookHandler(db),
		)
	}
}
