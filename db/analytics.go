package db

import (
	"fmt"

	"github.com/iamkimedel22/SAVR/models"
)

// GetLifetimeBalance returns the signed all-time sum of a user's
// transactions: income counts positive, expense negative.
func GetLifetimeBalance(userID int64) (float64, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE -amount END), 0)
		FROM transactions
		WHERE user_id = $1
	`
	var balance float64
	if err := DB.QueryRow(query, userID).Scan(&balance); err != nil {
		return 0, fmt.Errorf("error getting balance for user %d: %v", userID, err)
	}
	return balance, nil
}

// GetMonthTotalByType sums a user's transactions of one type within the
// current calendar month.
func GetMonthTotalByType(userID int64, txType string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND type = $2
		  AND date_trunc('month', date) = date_trunc('month', now())
	`
	var total float64
	if err := DB.QueryRow(query, userID, txType).Scan(&total); err != nil {
		return 0, fmt.Errorf("error getting monthly %s total for user %d: %v", txType, userID, err)
	}
	return total, nil
}

// GetGoalTotals sums current and target amounts across all of a user's
// savings goals.
func GetGoalTotals(userID int64) (current, target float64, err error) {
	query := `
		SELECT COALESCE(SUM(current_amount), 0), COALESCE(SUM(target_amount), 0)
		FROM savings_goals
		WHERE user_id = $1
	`
	if err := DB.QueryRow(query, userID).Scan(&current, &target); err != nil {
		return 0, 0, fmt.Errorf("error getting goal totals for user %d: %v", userID, err)
	}
	return current, target, nil
}

// GetSpendingByCategory sums a user's expenses per category name over
// the last months, largest first.
func GetSpendingByCategory(userID int64, months int) ([]models.CategorySpend, error) {
	query := `
		SELECT COALESCE(c.name, 'Other') AS name, SUM(t.amount) AS value
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1 AND t.type = 'expense'
		  AND t.date >= now() - make_interval(months => $2)
		GROUP BY COALESCE(c.name, 'Other')
		ORDER BY value DESC
	`
	rows, err := DB.Query(query, userID, months)
	if err != nil {
		return nil, fmt.Errorf("error getting category spending for user %d: %v", userID, err)
	}
	defer rows.Close()

	var result []models.CategorySpend
	for rows.Next() {
		var s models.CategorySpend
		if err := rows.Scan(&s.Name, &s.Value); err != nil {
			return nil, fmt.Errorf("error scanning category spending: %v", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category spending: %v", err)
	}
	return result, nil
}

// GetMonthlyTrend sums a user's expenses per calendar month over the
// last months, oldest first.
func GetMonthlyTrend(userID int64, months int) ([]models.MonthlyTotal, error) {
	query := `
		SELECT to_char(date, 'YYYY-MM') AS month, SUM(amount) AS total
		FROM transactions
		WHERE user_id = $1 AND type = 'expense'
		  AND date >= now() - make_interval(months => $2)
		GROUP BY to_char(date, 'YYYY-MM')
		ORDER BY month ASC
	`
	rows, err := DB.Query(query, userID, months)
	if err != nil {
		return nil, fmt.Errorf("error getting monthly trend for user %d: %v", userID, err)
	}
	defer rows.Close()

	var result []models.MonthlyTotal
	for rows.Next() {
		var t models.MonthlyTotal
		if err := rows.Scan(&t.Month, &t.Total); err != nil {
			return nil, fmt.Errorf("error scanning monthly trend: %v", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly trend: %v", err)
	}
	return result, nil
}

// GetIncomeVsExpense pairs income and expense sums per calendar month
// over the last months, oldest first.
func GetIncomeVsExpense(userID int64, months int) ([]models.MonthlyIncomeExpense, error) {
	query := `
		SELECT to_char(date, 'YYYY-MM') AS month,
		       SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END) AS income,
		       SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END) AS expense
		FROM transactions
		WHERE user_id = $1
		  AND date >= now() - make_interval(months => $2)
		GROUP BY to_char(date, 'YYYY-MM')
		ORDER BY month ASC
	`
	rows, err := DB.Query(query, userID, months)
	if err != nil {
		return nil, fmt.Errorf("error getting income vs expense for user %d: %v", userID, err)
	}
	defer rows.Close()

	var result []models.MonthlyIncomeExpense
	for rows.Next() {
		var m models.MonthlyIncomeExpense
		if err := rows.Scan(&m.Month, &m.Income, &m.Expense); err != nil {
			return nil, fmt.Errorf("error scanning income vs expense: %v", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating income vs expense: %v", err)
	}
	return result, nil
}
