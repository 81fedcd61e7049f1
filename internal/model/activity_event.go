package model

import "time"

// ActivityEvent records one mutation a user performed on their resources.
// Events are published to the broker on write and persisted asynchronously.
type ActivityEvent struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	Action     string    `gorm:"size:32;not null" json:"action"`
	EntityType string    `gorm:"size:32;not null" json:"entity_type"`
	EntityID   uint      `gorm:"not null" json:"entity_id"`
	CreatedAt  time.Time `json:"created_at"`
}

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)
