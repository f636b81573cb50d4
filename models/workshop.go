package models

import "time"

type Workshop struct {
	ID            uint                   `gorm:"primaryKey" json:"id"`
	ArtisanID     string                 `gorm:"not null;index" json:"artisan_id"`
	Artisan       User                   `gorm:"foreignKey:ArtisanID" json:"-"`
	Title         string                 `gorm:"not null" json:"title"`
	Description   string                 `json:"description"`
	Date          time.Time              `gorm:"not null" json:"date"`
	DurationMins  int                    `json:"duration_mins"`
	Capacity      int                    `gorm:"not null" json:"capacity"`
	Price         float64                `json:"price"`
	MeetingLink   string                 `json:"meeting_link"`
	State         LifecycleState         `gorm:"column:lifecycle_state;type:VARCHAR(10);default:'active'" json:"state"`
	Registrations []WorkshopRegistration `gorm:"foreignKey:WorkshopID;constraint:OnDelete:CASCADE" json:"registrations,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
}

// WorkshopRegistration records one seat; the composite unique index rejects
// double registration at the database level.
type WorkshopRegistration struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	WorkshopID uint      `gorm:"uniqueIndex:idx_workshop_user;index" json:"workshop_id"`
	UserID     string    `gorm:"uniqueIndex:idx_workshop_user" json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
}
