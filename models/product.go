package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ApprovalStatus string

const (
	ApprovalPending     ApprovalStatus = "pending"
	ApprovalApproved    ApprovalStatus = "approved"
	ApprovalDisapproved ApprovalStatus = "disapproved"
)

type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ArtisanID   string         `gorm:"index;not null" json:"artisan_id"`
	Artisan     User           `gorm:"foreignKey:ArtisanID" json:"-"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Material    string         `gorm:"index" json:"material"`
	OldPrice    float64        `gorm:"not null" json:"old_price"`
	NewPrice    float64        `gorm:"not null" json:"new_price"` // fixed at 90% of OldPrice at creation
	Quantity    int            `json:"quantity"`
	Image       string         `json:"image"`
	Approval    ApprovalStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"approval"`
	State       LifecycleState `gorm:"column:lifecycle_state;type:VARCHAR(10);default:'active'" json:"state"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// DiscountedPrice applies the marketplace's flat 10% listing discount,
// rounded to two decimal places.
func DiscountedPrice(listPrice float64) float64 {
	p, _ := decimal.NewFromFloat(listPrice).
		Mul(decimal.NewFromFloat(0.90)).
		Round(2).
		Float64()
	return p
}
