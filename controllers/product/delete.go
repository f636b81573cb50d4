package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamshreyas-06/ARTISAN-SPACE-sub001/models"
	"gorm.io/gorm"
)

// RetireProduct takes an artisan's listing off the marketplace. The row is
// kept: order snapshots reference it and a retired product simply reads as
// zero stock everywhere.
func RetireProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		artisanID, _ := c.Get("user_id")
		id := c.Param("id")

		result := db.Model(&models.Product{}).
			Where("id = ? AND artisan_id = ? AND lifecycle_state = ?", id, artisanID, models.StateActive).
			Update("lifecycle_state", models.StateRetired)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retire product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product retired"})
	}
}
