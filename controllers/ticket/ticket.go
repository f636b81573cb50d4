package ticketControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamshreyas-06/ARTISAN-SPACE-sub001/mailer"
	"github.com/iamshreyas-06/ARTISAN-SPACE-sub001/models"
	"gorm.io/gorm"
)

type CreateTicketInput struct {
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

type ReplyInput struct {
	Reply string `json:"reply" binding:"required"`
}

// POST /user/tickets
func CreateTicket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var input CreateTicketInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		ticket := models.SupportTicket{
			UserID:  userID.(string),
			Subject: input.Subject,
			Body:    input.Body,
			Status:  models.TicketOpen,
			State:   models.StateActive,
		}
		if err := db.Create(&ticket).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ticket"})
			return
		}

		c.JSON(http.StatusCreated, ticket)
	}
}

// GET /user/tickets
func GetMyTickets(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		var tickets []models.SupportTicket
		if err := db.Scopes(models.Active).
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&tickets).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tickets"})
			return
		}
		c.JSON(http.StatusOK, tickets)
	}
}

// GET /admin/tickets
func GetOpenTickets(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tickets []models.SupportTicket
		if err := db.Scopes(models.Active).
			Where("status = ?", models.TicketOpen).
			Preload("User").
			Order("created_at ASC").
			Find(&tickets).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tickets"})
			return
		}
		c.JSON(http.StatusOK, tickets)
	}
}

// POST /admin/tickets/:id/reply
func ReplyToTicket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input ReplyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var ticket models.SupportTicket
		if err := db.Scopes(models.Active).Preload("User").First(&ticket, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
			return
		}
		if ticket.Status == models.TicketClosed {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ticket is closed"})
			return
		}

		updates := map[string]interface{}{
			"reply":  input.Reply,
			"status": models.TicketReplied,
		}
		if err := db.Model(&ticket).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reply to ticket"})
			return
		}

		go mailer.TicketReply(ticket.User.Email, ticket.Subject, input.Reply)

		c.JSON(http.StatusOK, gin.H{"message": "Reply sent"})
	}
}

// POST /admin/tickets/:id/close
func CloseTicket(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Model(&models.SupportTicket{}).
			Where("id = ? AND lifecycle_state = ? AND status <> ?", id, models.StateActive, models.TicketClosed).
			Update("status", models.TicketClosed)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close ticket"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found or already closed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Ticket closed"})
	}
}
