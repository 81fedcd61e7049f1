package model

import "time"

type Transaction struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	BudgetCategoryID *uint     `gorm:"index" json:"budget_category_id,omitempty"`
	Description      string    `gorm:"size:255;not null" json:"description"`
	Amount           float64   `gorm:"not null" json:"amount"`
	Merchant         string    `gorm:"size:128;not null" json:"merchant"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
