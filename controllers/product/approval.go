package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/iamshreyas-06/ARTISAN-SPACE-sub001/mailer"
	"github.com/iamshreyas-06/ARTISAN-SPACE-sub001/models"
	"gorm.io/gorm"
)

// ListPendingProducts returns all listings awaiting review.
func ListPendingProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pending []models.Product
		if err := db.Scopes(models.Active).
			Where("approval = ?", models.ApprovalPending).
			Order("created_at ASC").
			Find(&pending).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending products"})
			return
		}
		c.JSON(http.StatusOK, pending)
	}
}

func setApproval(db *gorm.DB, c *gin.Context, status models.ApprovalStatus) {
	id := c.Param("id")

	var product models.Product
	if err := db.Scopes(models.Active).First(&product, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if err := db.Model(&product).Update("approval", status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update approval status"})
		return
	}

	// Notify the artisan, best-effort
	var artisan models.User
	if db.First(&artisan, "id = ?", product.ArtisanID).Error == nil {
		go mailer.ProductApprovalNotice(artisan.Email, product.Name, status == models.ApprovalApproved)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product " + string(status)})
}

// POST /admin/products/:id/approve
func ApproveProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		setApproval(db, c, models.ApprovalApproved)
	}
}

// POST /admin/products/:id/disapprove
func DisapproveProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		setApproval(db, c, models.ApprovalDisapproved)
	}
}

type RestockInput struct {
	Quantity int `json:"quantity" binding:"required"`
}

// RestockProduct sets a product's stock through the inventory primitive's
// default path: zero is rejected here, only checkout may exhaust stock.
func RestockProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		productID, err := parseUintParam(id)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input RestockInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := models.SetStock(db, productID, input.Quantity, false); err != nil {
			status := http.StatusBadRequest
			if err == models.ErrProductMissing {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Stock updated"})
	}
}

func parseUintParam(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	return uint(v), err
}
