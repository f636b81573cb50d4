package routes

import (
	"github.com/gin-gonic/gin"
	customOrderControllers "github.com/iamshreyas-06/ARTISAN-SPACE-sub001/controllers/customorder"
	productcontroller "github.com/iamshreyas-06/ARTISAN-SPACE-sub001/controllers/product"
	workshopControllers "github.com/iamshreyas-06/ARTISAN-SPACE-sub001/controllers/workshop"
	"github.com/iamshreyas-06/ARTISAN-SPACE-sub001/middleware"
	"github.com/iamshreyas-06/ARTISAN-SPACE-sub001/models"
	"gorm.io/gorm"
)

// SetupArtisanRoutes registers all “/artisan/*” endpoints. Requires the
// artisan role.
func SetupArtisanRoutes(r *gin.Engine, db *gorm.DB) {
	artisanGroup := r.Group("/artisan")
	artisanGroup.Use(middleware.ValidateToken, middleware.RequireRoles(models.RoleArtisan))
	{
		// ─────────── Listings ───────────
		productGroup := artisanGroup.Group("/products")
		{
			productGroup.POST("", productcontroller.CreateProduct(db))
			productGroup.GET("", productcontroller.GetMyProducts(db))
			productGroup.PUT("/:id", productcontroller.UpdateProduct(db))
			productGroup.DELETE("/:id", productcontroller.RetireProduct(db))
		}

		// ─────────── Custom Order Requests ───────────
		customGroup := artisanGroup.Group("/custom-orders")
		{
			customGroup.GET("", customOrderControllers.GetIncomingCustomOrders(db))
			customGroup.POST("/:id/accept", customOrderControllers.AcceptCustomOrder(db))
			customGroup.POST("/:id/reject", customOrderControllers.RejectCustomOrder(db))
			customGroup.POST("/:id/complete", customOrderControllers.CompleteCustomOrder(db))
		}

		// ─────────── Workshops ───────────
		workshopGroup := artisanGroup.Group("/workshops")
		{
			workshopGroup.POST("", workshopControllers.CreateWorkshop(db))
			workshopGroup.GET("", workshopControllers.GetMyWorkshops(db))
			workshopGroup.PUT("/:id", workshopControllers.UpdateWorkshop(db))
			workshopGroup.DELETE("/:id", workshopControllers.CancelWorkshop(db))
		}
	}
}
