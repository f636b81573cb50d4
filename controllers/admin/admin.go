package adminController

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/iamshreyas-06/ARTISAN-SPACE-sub001/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CreateDeliveryAgentInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
}

// CreateDeliveryAgent provisions a delivery account. Delivery and admin
// accounts never come through self-service registration.
func CreateDeliveryAgent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateDeliveryAgentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		agent := models.User{
			ID:           uuid.NewString(),
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: string(hash),
			Phone:        input.Phone,
			Role:         models.RoleDelivery,
			State:        models.StateActive,
		}
		if err := db.Create(&agent).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Failed to create delivery agent (email may already be registered)"})
			return
		}

		c.JSON(http.StatusCreated, agent)
	}
}

// RetireUser retires an account and cascades in one transaction: the user's
// listings are retired, their cart is removed, and their open tickets are
// closed. The cascade lives here, in the handler's transaction, so the whole
// write path is auditable as a single unit rather than hidden in model hooks.
func RetireUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")

		var user models.User
		if err := db.Scopes(models.Active).First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&user).Update("lifecycle_state", models.StateRetired).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Product{}).
				Where("artisan_id = ?", user.ID).
				Update("lifecycle_state", models.StateRetired).Error; err != nil {
				return err
			}

			var cart models.Cart
			if err := tx.Where("user_id = ?", user.ID).First(&cart).Error; err == nil {
				if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
					return err
				}
				if err := tx.Delete(&cart).Error; err != nil {
					return err
				}
			}

			return tx.Model(&models.SupportTicket{}).
				Where("user_id = ? AND status <> ?", user.ID, models.TicketClosed).
				Update("status", models.TicketClosed).Error
		})
		if err != nil {
			slog.Error("failed to retire user", slog.String("user_id", user.ID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retire user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User retired"})
	}
}
