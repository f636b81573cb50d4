package models

import "time"

type TicketStatus string

const (
	TicketOpen    TicketStatus = "open"
	TicketReplied TicketStatus = "replied"
	TicketClosed  TicketStatus = "closed"
)

type SupportTicket struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    string         `gorm:"not null;index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	Subject   string         `gorm:"not null" json:"subject"`
	Body      string         `gorm:"not null" json:"body"`
	Reply     string         `json:"reply"`
	Status    TicketStatus   `gorm:"type:VARCHAR(10);default:'open'" json:"status"`
	State     LifecycleState `gorm:"column:lifecycle_state;type:VARCHAR(10);default:'active'" json:"state"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
