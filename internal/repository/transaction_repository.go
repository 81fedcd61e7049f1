package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"budget-tracker/internal/model"
)

// TransactionFilter narrows a transaction listing. Zero values mean "no
// constraint" for that field.
type TransactionFilter struct {
	MinAmount   *float64
	MaxAmount   *float64
	StartDate   *time.Time
	EndDate     *time.Time
	Merchant    string
	Description string
}

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(tx *model.Transaction) error {
	if err := r.db.Create(tx).Error; err != nil {
		return fmt.Errorf("create transaction failed: %w", err)
	}
	return nil
}

func (r *TransactionRepository) ListByUserID(userID uint) ([]model.Transaction, error) {
	var txs []model.Transaction
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("list transactions failed: %w", err)
	}
	return txs, nil
}

// ListPage returns one page of the user's transactions, newest first,
// restricted by the filter. Page numbering starts at 1.
func (r *TransactionRepository) ListPage(userID uint, filter TransactionFilter, page, limit int) ([]model.Transaction, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	query := r.db.Where("user_id = ?", userID)
	if filter.MinAmount != nil {
		query = query.Where("amount >= ?", *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		query = query.Where("amount <= ?", *filter.MaxAmount)
	}
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}
	if filter.Merchant != "" {
		query = query.Where("merchant LIKE ?", "%"+filter.Merchant+"%")
	}
	if filter.Description != "" {
		query = query.Where("description LIKE ?", "%"+filter.Description+"%")
	}

	var txs []model.Transaction
	if err := query.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("list transactions failed: %w", err)
	}
	return txs, nil
}

func (r *TransactionRepository) GetByIDAndUserID(txID, userID uint) (*model.Transaction, error) {
	var tx model.Transaction
	if err := r.db.Where("id = ? AND user_id = ?", txID, userID).First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction failed: %w", err)
	}
	return &tx, nil
}

func (r *TransactionRepository) Update(tx *model.Transaction) error {
	if err := r.db.Save(tx).Error; err != nil {
		return fmt.Errorf("update transaction failed: %w", err)
	}
	return nil
}

func (r *TransactionRepository) DeleteByIDAndUserID(txID, userID uint) error {
	if err := r.db.Where("id = ? AND user_id = ?", txID, userID).Delete(&model.Transaction{}).Error; err != nil {
		return fmt.Errorf("delete transaction failed: %w", err)
	}
	return nil
}
