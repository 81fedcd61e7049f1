package app

import (
	"reflect"
	"testing"

	"budget-tracker/internal/model"
)

func TestSpendingByCategory(t *testing.T) {
	t.Parallel()

	groceries := uint(1)
	travel := uint(2)
	budgets := []model.BudgetCategory{
		{ID: groceries, Category: "Groceries", Limit: 400},
		{ID: travel, Category: "Travel", Limit: 250},
	}
	transactions := []model.Transaction{
		{Amount: 25.50, BudgetCategoryID: &groceries},
		{Amount: 14.50, BudgetCategoryID: &groceries},
		{Amount: 99, BudgetCategoryID: &travel},
		{Amount: 7},
		{Amount: 3},
	}

	got := SpendingByCategory(budgets, transactions)
	want := []CategorySpending{
		{BudgetCategoryID: groceries, Category: "Groceries", Limit: 400, Spent: 40},
		{BudgetCategoryID: travel, Category: "Travel", Limit: 250, Spent: 99},
		{Category: "Uncategorized", Spent: 10},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SpendingByCategory = %+v, want %+v", got, want)
	}
}

func TestSpendingByCategory_NoUncategorizedRowWithoutUncategorizedSpend(t *testing.T) {
	t.Parallel()

	groceries := uint(1)
	budgets := []model.BudgetCategory{{ID: groceries, Category: "Groceries", Limit: 100}}
	transactions := []model.Transaction{{Amount: 12, BudgetCategoryID: &groceries}}

	got := SpendingByCategory(budgets, transactions)
	if len(got) != 1 {
		t.Fatalf("expected a single row, got %+v", got)
	}
	if got[0].Spent != 12 {
		t.Fatalf("expected spent 12, got %v", got[0].Spent)
	}
}

func TestSpendingByCategory_BudgetWithNoSpendIsZero(t *testing.T) {
	t.Parallel()

	budgets := []model.BudgetCategory{{ID: 5, Category: "Rent", Limit: 1200}}

	got := SpendingByCategory(budgets, nil)
	want := []CategorySpending{{BudgetCategoryID: 5, Category: "Rent", Limit: 1200, Spent: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SpendingByCategory = %+v, want %+v", got, want)
	}
}
