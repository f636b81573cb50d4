package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting fulfilment
	OrderStatusShipped   OrderStatus = "shipped"   // Handed to a delivery agent
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the items
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before shipping

	// Payment statuses
	PaymentStatusUnpaid PaymentStatus = "unpaid" // Payment not completed yet
	PaymentStatusPaid   PaymentStatus = "paid"   // Payment completed successfully
	PaymentStatusFailed PaymentStatus = "failed" // Payment attempt failed
)

type Order struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	OrderRef        string         `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID          string         `gorm:"not null;index" json:"user_id"`
	User            User           `gorm:"foreignKey:UserID" json:"user"`
	DeliveryAgentID *string        `gorm:"index" json:"delivery_agent_id,omitempty"`
	Items           []OrderItem    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Money           float64        `json:"money"`
	Status          OrderStatus    `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentID       string         `json:"payment_id"`
	PaymentStatus   PaymentStatus  `gorm:"type:VARCHAR(20);default:'unpaid'" json:"payment_status"`
	State           LifecycleState `gorm:"column:lifecycle_state;type:VARCHAR(10);default:'active'" json:"state"`
	PurchasedAt     time.Time      `json:"purchased_at"`
}

// OrderItem is a snapshot of the product at purchase time. Later edits or
// retirement of the product must not alter historical orders.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index" json:"order_id"`
	ProductID   uint    `json:"product_id"`
	ArtisanID   string  `json:"artisan_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Material    string  `json:"material"`
	Image       string  `json:"image"`
	OldPrice    float64 `json:"old_price"`
	NewPrice    float64 `json:"new_price"`
	Quantity    int     `json:"quantity"`
}
