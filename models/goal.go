package models

// SavingsGoal is the list shape of a savings goal. Percentage is capped
// at 100 for display; Remaining is not capped and goes negative once the
// goal is exceeded.
type SavingsGoal struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	Deadline      string  `json:"deadline"`
	Percentage    int     `json:"percentage"`
	Remaining     float64 `json:"remaining"`
}
