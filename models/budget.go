package models

// Budget is the list shape of a budget. Spent and Percentage are derived
// at read time from the expense transactions of the budget's month; they
// are never stored.
type Budget struct {
	ID         int64   `json:"id"`
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Spent      float64 `json:"spent"`
	Percentage int     `json:"percentage"`
}
