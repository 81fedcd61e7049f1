package model

import "time"

// BudgetCategory is a per-user spending limit for one category in one month.
// Month is stored as "YYYY-MM".
type BudgetCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Category  string    `gorm:"size:128;not null" json:"category"`
	Limit     float64   `gorm:"column:monthly_limit;not null" json:"limit"`
	Month     string    `gorm:"size:7;not null" json:"month"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
