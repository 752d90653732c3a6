package models

type CategorySpend struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type MonthlyTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

type MonthlyIncomeExpense struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

type AnalyticsReport struct {
	SpendingByCategory []CategorySpend        `json:"spendingByCategory"`
	MonthlyTrend       []MonthlyTotal         `json:"monthlyTrend"`
	IncomeVsExpense    []MonthlyIncomeExpense `json:"incomeVsExpense"`
}

type DashboardSummary struct {
	UserName             string  `json:"userName"`
	TotalBalance         float64 `json:"totalBalance"`
	MonthlyIncome        float64 `json:"monthlyIncome"`
	MonthlyExpense       float64 `json:"monthlyExpense"`
	SavingsGoalsProgress int     `json:"savingsGoalsProgress"`
}
