package models

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleArtisan  Role = "artisan"
	RoleDelivery Role = "delivery"
	RoleAdmin    Role = "admin"
)

// ValidRole reports whether s names one of the four account roles.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleCustomer, RoleArtisan, RoleDelivery, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"unique;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Phone        string         `json:"phone"`
	Role         Role           `gorm:"type:VARCHAR(20);default:'customer'" json:"role"`
	State        LifecycleState `gorm:"column:lifecycle_state;type:VARCHAR(10);default:'active'" json:"state"`
	Address      Address        `gorm:"embedded" json:"address"` // Embeds address fields directly
	CreatedAt    time.Time      `json:"created_at"`
}

// Address model embedded in User
type Address struct {
	Country    string `json:"country"`
	Region     string `json:"region"`
	City       string `json:"city"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
}
