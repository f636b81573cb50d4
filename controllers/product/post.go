package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamshreyas-06/ARTISAN-SPACE-sub001/models"
	"gorm.io/gorm"
)

type CreateProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Material    string  `json:"material" binding:"required"`
	OldPrice    float64 `json:"old_price" binding:"required,gt=0"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
	Image       string  `json:"image"` // URL on the image host, uploaded by the client
}

// CreateProduct lists a new piece for the calling artisan. The discounted
// price is fixed here, at creation time, and the listing waits for admin
// approval before it becomes purchasable.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		artisanIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		newProduct := models.Product{
			ArtisanID:   artisanIDVal.(string),
			Name:        input.Name,
			Description: input.Description,
			Material:    input.Material,
			OldPrice:    input.OldPrice,
			NewPrice:    models.DiscountedPrice(input.OldPrice),
			Quantity:    input.Quantity,
			Image:       input.Image,
			Approval:    models.ApprovalPending,
			State:       models.StateActive,
		}

		if err := db.Create(&newProduct).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, newProduct)
	}
}
