package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/iamshreyas-06/ARTISAN-SPACE-sub001/controllers/order"
	productcontroller "github.com/iamshreyas-06/ARTISAN-SPACE-sub001/controllers/product"
	workshopControllers "github.com/iamshreyas-06/ARTISAN-SPACE-sub001/controllers/workshop"
	"github.com/iamshreyas-06/ARTISAN-SPACE-sub001/middleware"
	"github.com/iamshreyas-06/ARTISAN-SPACE-sub001/models"
	"gorm.io/gorm"
)

// SetupStoreRoutes registers the public catalog, checkout and delivery
// endpoints.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB) {
	// ─────────── Public Catalog ───────────
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/workshops", workshopControllers.GetUpcomingWorkshops(db))

	// ─────────── Checkout ───────────
	orderGroup := r.Group("/orders")
	orderGroup.Use(middleware.ValidateToken)
	{
		orderGroup.POST("/place", orderControllers.PlaceOrderHandler(db))
		orderGroup.GET("/:orderRef", orderControllers.GetOrderByRefHandler(db))
	}

	// ─────────── Delivery Agents ───────────
	deliveryGroup := r.Group("/delivery")
	deliveryGroup.Use(middleware.ValidateToken, middleware.RequireRoles(models.RoleDelivery))
	{
		deliveryGroup.GET("/orders", orderControllers.GetAssignedOrdersHandler(db))
		deliveryGroup.PUT("/orders/:orderRef/delivered", orderControllers.MarkDeliveredHandler(db))
	}
}
