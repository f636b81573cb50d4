package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/iamshreyas-06/ARTISAN-SPACE-sub001/controllers/cart"
	customOrderControllers "github.com/iamshreyas-06/ARTISAN-SPACE-sub001/controllers/customorder"
	orderControllers "github.com/iamshreyas-06/ARTISAN-SPACE-sub001/controllers/order"
	ticketControllers "github.com/iamshreyas-06/ARTISAN-SPACE-sub001/controllers/ticket"
	userControllers "github.com/iamshreyas-06/ARTISAN-SPACE-sub001/controllers/user"
	workshopControllers "github.com/iamshreyas-06/ARTISAN-SPACE-sub001/controllers/workshop"
	"github.com/iamshreyas-06/ARTISAN-SPACE-sub001/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(db)) // PUT /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetUserCart(db))                  // GET /user/cart
			cartGroup.POST("/", cartControllers.UpdateCartItem(db))              // POST /user/cart
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db)) // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearUserCart(db))             // DELETE /user/cart
		}

		// ──────────────── Orders ────────────────
		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.GET("/", orderControllers.GetUserOrdersHandler(db))
			orderGroup.PUT("/:orderRef/cancel", orderControllers.CancelOrderHandler(db))
		}

		// ──────────────── Custom Order Requests ────────────────
		customGroup := userGroup.Group("/custom-orders")
		{
			customGroup.POST("/", customOrderControllers.CreateCustomOrder(db))
			customGroup.GET("/", customOrderControllers.GetMyCustomOrders(db))
		}

		// ──────────────── Workshops ────────────────
		workshopGroup := userGroup.Group("/workshops")
		{
			workshopGroup.GET("/", workshopControllers.GetMyRegistrations(db))
			workshopGroup.POST("/:id/register", workshopControllers.RegisterForWorkshop(db))
		}

		// ──────────────── Support Tickets ────────────────
		ticketGroup := userGroup.Group("/tickets")
		{
			ticketGroup.POST("/", ticketControllers.CreateTicket(db))
			ticketGroup.GET("/", ticketControllers.GetMyTickets(db))
		}
	}
}
