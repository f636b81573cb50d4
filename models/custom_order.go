package models

import "time"

type CustomOrderStatus string

const (
	CustomOrderRequested CustomOrderStatus = "requested" // Awaiting the artisan's decision
	CustomOrderAccepted  CustomOrderStatus = "accepted"  // Artisan accepted and quoted a price
	CustomOrderRejected  CustomOrderStatus = "rejected"
	CustomOrderCompleted CustomOrderStatus = "completed"
)

// CustomOrder is a bespoke-piece request from a customer to one artisan.
type CustomOrder struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	UserID      string            `gorm:"not null;index" json:"user_id"`
	User        User              `gorm:"foreignKey:UserID" json:"user"`
	ArtisanID   string            `gorm:"not null;index" json:"artisan_id"`
	Description string            `gorm:"not null" json:"description"`
	Material    string            `json:"material"`
	Budget      float64           `json:"budget"`
	QuotedPrice float64           `json:"quoted_price"`
	Status      CustomOrderStatus `gorm:"type:VARCHAR(20);default:'requested'" json:"status"`
	State       LifecycleState    `gorm:"column:lifecycle_state;type:VARCHAR(10);default:'active'" json:"state"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
