package models

import "gorm.io/gorm"

// LifecycleState replaces the ad-hoc validity flags used elsewhere: an entity
// is either active or retired, and retired rows never leave the database.
type LifecycleState string

const (
	StateActive  LifecycleState = "active"
	StateRetired LifecycleState = "retired"
)

// Active scopes a query to rows still in the active lifecycle state.
// Every read path that serves non-admin traffic goes through this scope.
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("lifecycle_state = ?", StateActive)
}

// Purchasable scopes a product query to listings that count toward stock:
// active and admin-approved.
func Purchasable(db *gorm.DB) *gorm.DB {
	return db.Where("lifecycle_state = ? AND approval = ?", StateActive, ApprovalApproved)
}
