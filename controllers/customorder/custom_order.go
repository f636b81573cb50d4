package customOrderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamshreyas-06/ARTISAN-SPACE-sub001/models"
	"gorm.io/gorm"
)

type CreateCustomOrderInput struct {
	ArtisanID   string  `json:"artisan_id" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Material    string  `json:"material"`
	Budget      float64 `json:"budget" binding:"omitempty,gt=0"`
}

type QuoteInput struct {
	QuotedPrice float64 `json:"quoted_price" binding:"required,gt=0"`
}

// POST /user/custom-orders
func CreateCustomOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var input CreateCustomOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var artisan models.User
		if err := db.Scopes(models.Active).
			Where("id = ? AND role = ?", input.ArtisanID, models.RoleArtisan).
			First(&artisan).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Artisan not found"})
			return
		}

		request := models.CustomOrder{
			UserID:      userID.(string),
			ArtisanID:   artisan.ID,
			Description: input.Description,
			Material:    input.Material,
			Budget:      input.Budget,
			Status:      models.CustomOrderRequested,
			State:       models.StateActive,
		}
		if err := db.Create(&request).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create custom order request"})
			return
		}

		c.JSON(http.StatusCreated, request)
	}
}

// GET /user/custom-orders
func GetMyCustomOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		var requests []models.CustomOrder
		if err := db.Scopes(models.Active).
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch custom orders"})
			return
		}
		c.JSON(http.StatusOK, requests)
	}
}

// GET /artisan/custom-orders
func GetIncomingCustomOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		artisanID, _ := c.Get("user_id")
		var requests []models.CustomOrder
		if err := db.Scopes(models.Active).
			Where("artisan_id = ?", artisanID).
			Preload("User").
			Order("created_at DESC").
			Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch custom orders"})
			return
		}
		c.JSON(http.StatusOK, requests)
	}
}

func loadOwnRequest(db *gorm.DB, c *gin.Context) (*models.CustomOrder, bool) {
	artisanID, _ := c.Get("user_id")
	id := c.Param("id")

	var request models.CustomOrder
	err := db.Scopes(models.Active).
		Where("id = ? AND artisan_id = ?", id, artisanID).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Custom order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch custom order"})
		}
		return nil, false
	}
	return &request, true
}

// POST /artisan/custom-orders/:id/accept
func AcceptCustomOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		request, ok := loadOwnRequest(db, c)
		if !ok {
			return
		}
		if request.Status != models.CustomOrderRequested {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Request already decided"})
			return
		}

		var input QuoteInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := map[string]interface{}{
			"status":       models.CustomOrderAccepted,
			"quoted_price": input.QuotedPrice,
		}
		if err := db.Model(request).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept custom order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Custom order accepted"})
	}
}

// POST /artisan/custom-orders/:id/reject
func RejectCustomOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		request, ok := loadOwnRequest(db, c)
		if !ok {
			return
		}
		if request.Status != models.CustomOrderRequested {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Request already decided"})
			return
		}

		if err := db.Model(request).Update("status", models.CustomOrderRejected).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject custom order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Custom order rejected"})
	}
}

// POST /artisan/custom-orders/:id/complete
func CompleteCustomOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		request, ok := loadOwnRequest(db, c)
		if !ok {
			return
		}
		if request.Status != models.CustomOrderAccepted {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only an accepted request can be completed"})
			return
		}

		if err := db.Model(request).Update("status", models.CustomOrderCompleted).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete custom order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Custom order completed"})
	}
}
