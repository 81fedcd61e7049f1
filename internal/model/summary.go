package model

// UserSummary is the dashboard payload: every resource the user owns in one
// response. Cached per user and rebuilt after any mutation.
type UserSummary struct {
	DebitCards   []Card           `json:"debit_cards"`
	CreditCards  []Card           `json:"credit_cards"`
	Transactions []Transaction    `json:"transactions"`
	Budgets      []BudgetCategory `json:"budgets"`
}
