package workshopControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamshreyas-06/ARTISAN-SPACE-sub001/models"
	"gorm.io/gorm"
)

var (
	errWorkshopFull    = errors.New("workshop is fully booked")
	errWorkshopClosed  = errors.New("workshop date has passed")
	errAlreadySignedUp = errors.New("already registered for this workshop")
)

type CreateWorkshopInput struct {
	Title        string    `json:"title" binding:"required"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date" binding:"required"`
	DurationMins int       `json:"duration_mins" binding:"required,min=15"`
	Capacity     int       `json:"capacity" binding:"required,min=1"`
	Price        float64   `json:"price" binding:"omitempty,gte=0"`
	MeetingLink  string    `json:"meeting_link"`
}

// POST /artisan/workshops
func CreateWorkshop(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		artisanID, _ := c.Get("user_id")

		var input CreateWorkshopInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Date.Before(time.Now()) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Workshop date must be in the future"})
			return
		}

		workshop := models.Workshop{
			ArtisanID:    artisanID.(string),
			Title:        input.Title,
			Description:  input.Description,
			Date:         input.Date,
			DurationMins: input.DurationMins,
			Capacity:     input.Capacity,
			Price:        input.Price,
			MeetingLink:  input.MeetingLink,
			State:        models.StateActive,
		}
		if err := db.Create(&workshop).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create workshop"})
			return
		}

		c.JSON(http.StatusCreated, workshop)
	}
}

type UpdateWorkshopInput struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Date         *time.Time `json:"date"`
	DurationMins *int       `json:"duration_mins" binding:"omitempty,min=15"`
	Capacity     *int       `json:"capacity" binding:"omitempty,min=1"`
	Price        *float64   `json:"price" binding:"omitempty,gte=0"`
	MeetingLink  *string    `json:"meeting_link"`
}

// PUT /artisan/workshops/:id
//
// Capacity can only grow once people hold seats.
func UpdateWorkshop(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		artisanID, _ := c.Get("user_id")
		id := c.Param("id")

		var workshop models.Workshop
		if err := db.Scopes(models.Active).
			Where("id = ? AND artisan_id = ?", id, artisanID).
			First(&workshop).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Workshop not found"})
			return
		}

		var input UpdateWorkshopInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Title != nil {
			updates["title"] = *input.Title
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Date != nil {
			if input.Date.Before(time.Now()) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Workshop date must be in the future"})
				return
			}
			updates["date"] = *input.Date
		}
		if input.DurationMins != nil {
			updates["duration_mins"] = *input.DurationMins
		}
		if input.Capacity != nil {
			var taken int64
			if err := db.Model(&models.WorkshopRegistration{}).
				Where("workshop_id = ?", workshop.ID).
				Count(&taken).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update workshop"})
				return
			}
			if int64(*input.Capacity) < taken {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Capacity is below the current number of registrations"})
				return
			}
			updates["capacity"] = *input.Capacity
		}
		if input.Price != nil {
			updates["price"] = *input.Price
		}
		if input.MeetingLink != nil {
			updates["meeting_link"] = *input.MeetingLink
		}

		if len(updates) > 0 {
			if err := db.Model(&workshop).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update workshop"})
				return
			}
		}

		c.JSON(http.StatusOK, workshop)
	}
}

// GET /workshops
//
// Public listing of upcoming workshops.
func GetUpcomingWorkshops(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var workshops []models.Workshop
		if err := db.Scopes(models.Active).
			Where("date > ?", time.Now()).
			Order("date ASC").
			Find(&workshops).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch workshops"})
			return
		}
		c.JSON(http.StatusOK, workshops)
	}
}

// GET /artisan/workshops
func GetMyWorkshops(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		artisanID, _ := c.Get("user_id")
		var workshops []models.Workshop
		if err := db.Scopes(models.Active).
			Where("artisan_id = ?", artisanID).
			Preload("Registrations").
			Order("date ASC").
			Find(&workshops).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch workshops"})
			return
		}
		c.JSON(http.StatusOK, workshops)
	}
}

// DELETE /artisan/workshops/:id
func CancelWorkshop(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		artisanID, _ := c.Get("user_id")
		id := c.Param("id")

		result := db.Model(&models.Workshop{}).
			Where("id = ? AND artisan_id = ? AND lifecycle_state = ?", id, artisanID, models.StateActive).
			Update("lifecycle_state", models.StateRetired)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel workshop"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Workshop not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Workshop cancelled"})
	}
}

// registerForWorkshop reserves one seat inside a transaction so the capacity
// check and the insert cannot interleave with another registration's commit.
func registerForWorkshop(db *gorm.DB, workshopID uint, userID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var workshop models.Workshop
		if err := tx.Scopes(models.Active).First(&workshop, "id = ?", workshopID).Error; err != nil {
			return err
		}
		if workshop.Date.Before(time.Now()) {
			return errWorkshopClosed
		}

		var taken int64
		if err := tx.Model(&models.WorkshopRegistration{}).
			Where("workshop_id = ?", workshop.ID).
			Count(&taken).Error; err != nil {
			return err
		}
		if taken >= int64(workshop.Capacity) {
			return errWorkshopFull
		}

		var existing models.WorkshopRegistration
		err := tx.Where("workshop_id = ? AND user_id = ?", workshop.ID, userID).First(&existing).Error
		if err == nil {
			return errAlreadySignedUp
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(&models.WorkshopRegistration{
			WorkshopID: workshop.ID,
			UserID:     userID,
		}).Error
	})
}

// POST /user/workshops/:id/register
func RegisterForWorkshop(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		workshopID, err := parseWorkshopID(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workshop ID"})
			return
		}

		err = registerForWorkshop(db, workshopID, userID.(string))
		switch {
		case err == nil:
			c.JSON(http.StatusCreated, gin.H{"message": "Registered for workshop"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Workshop not found"})
		case errors.Is(err, errWorkshopFull), errors.Is(err, errWorkshopClosed), errors.Is(err, errAlreadySignedUp):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		}
	}
}

// GET /user/workshops
func GetMyRegistrations(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var registrations []models.WorkshopRegistration
		if err := db.Where("user_id = ?", userID).Find(&registrations).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch registrations"})
			return
		}
		if len(registrations) == 0 {
			c.JSON(http.StatusOK, []models.Workshop{})
			return
		}

		ids := make([]uint, 0, len(registrations))
		for _, r := range registrations {
			ids = append(ids, r.WorkshopID)
		}
		var workshops []models.Workshop
		if err := db.Scopes(models.Active).Where("id IN ?", ids).Order("date ASC").Find(&workshops).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch workshops"})
			return
		}
		c.JSON(http.StatusOK, workshops)
	}
}

func parseWorkshopID(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	return uint(v), err
}
