package models

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// Transaction is the list/read shape of a transaction; the category is
// flattened to its name, with "Other" standing in for a missing link.
type Transaction struct {
	ID       int64   `json:"id"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Type     string  `json:"type"`
	Date     string  `json:"date"`
	Note     string  `json:"note"`
}
