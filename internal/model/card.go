package model

import "time"

const (
	CardKindDebit  = "debit"
	CardKindCredit = "credit"
)

type Card struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Kind      string    `gorm:"size:16;not null;index" json:"kind"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Balance   float64   `gorm:"not null;default:0" json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
