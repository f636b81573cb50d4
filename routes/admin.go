package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/iamshreyas-06/ARTISAN-SPACE-sub001/controllers/admin"
	cartControllers "github.com/iamshreyas-06/ARTISAN-SPACE-sub001/controllers/cart"
	orderControllers "github.com/iamshreyas-06/ARTISAN-SPACE-sub001/controllers/order"
	productcontroller "github.com/iamshreyas-06/ARTISAN-SPACE-sub001/controllers/product"
	ticketControllers "github.com/iamshreyas-06/ARTISAN-SPACE-sub001/controllers/ticket"
	userControllers "github.com/iamshreyas-06/ARTISAN-SPACE-sub001/controllers/user"
	"github.com/iamshreyas-06/ARTISAN-SPACE-sub001/middleware"
	"github.com/iamshreyas-06/ARTISAN-SPACE-sub001/models"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires the admin role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireRoles(models.RoleAdmin))
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.POST("/delivery-agents", adminController.CreateDeliveryAgent(db))
		adminGroup.DELETE("/users/:user_id", adminController.RetireUser(db))

		// ─────────── Product Review & Inventory ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("/pending", productcontroller.ListPendingProducts(db))
			productAdmin.POST("/:id/approve", productcontroller.ApproveProduct(db))
			productAdmin.POST("/:id/disapprove", productcontroller.DisapproveProduct(db))
			productAdmin.PUT("/:id/stock", productcontroller.RestockProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Orders ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("/", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
			orderAdmin.GET("/:orderRef", orderControllers.GetOrderByRefHandler(db))
			orderAdmin.PUT("/:orderRef/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.PUT("/:orderRef/assign", orderControllers.AssignDeliveryAgentHandler(db))
		}

		// ─────────── Support Tickets ───────────
		ticketAdmin := adminGroup.Group("/tickets")
		{
			ticketAdmin.GET("/", ticketControllers.GetOpenTickets(db))
			ticketAdmin.POST("/:id/reply", ticketControllers.ReplyToTicket(db))
			ticketAdmin.POST("/:id/close", ticketControllers.CloseTicket(db))
		}

		// ─────────── Cart Inspection ───────────
		cartMgmt := adminGroup.Group("/user-cart")
		{
			cartMgmt.GET("/:user_id", cartControllers.GetAdminUserCart(db))
		}
	}
}
