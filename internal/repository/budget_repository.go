package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"budget-tracker/internal/model"
)

type BudgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) Create(budget *model.BudgetCategory) error {
	if err := r.db.Create(budget).Error; err != nil {
		return fmt.Errorf("create budget category failed: %w", err)
	}
	return nil
}

func (r *BudgetRepository) ListByUserID(userID uint) ([]model.BudgetCategory, error) {
	var budgets []model.BudgetCategory
	if err := r.db.Where("user_id = ?", userID).Order("month DESC, category ASC").Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("list budget categories failed: %w", err)
	}
	return budgets, nil
}

func (r *BudgetRepository) GetByIDAndUserID(budgetID, userID uint) (*model.BudgetCategory, error) {
	var budget model.BudgetCategory
	if err := r.db.Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get budget category failed: %w", err)
	}
	return &budget, nil
}

func (r *BudgetRepository) Update(budget *model.BudgetCategory) error {
	if err := r.db.Save(budget).Error; err != nil {
		return fmt.Errorf("update budget category failed: %w", err)
	}
	return nil
}

func (r *BudgetRepository) DeleteByIDAndUserID(budgetID, userID uint) error {
	if err := r.db.Where("id = ? AND user_id = ?", budgetID, userID).Delete(&model.BudgetCategory{}).Error; err != nil {
		return fmt.Errorf("delete budget category failed: %w", err)
	}
	return nil
}
