package db

import (
	"database/sql"
	"fmt"

	"github.com/iamkimedel22/SAVR/models"
)

const budgetsTable = "budgets"

// ListBudgets returns one row per budget with the derived spent total:
// the sum of the user's expense transactions in the budget's category
// whose date falls inside the budget's month. Percentage is filled in
// by the handler.
func ListBudgets(userID int64) ([]models.Budget, error) {
	query := `
		SELECT b.id, COALESCE(c.name, 'Other') AS category, b.amount,
		       COALESCE(SUM(t.amount), 0) AS spent
		FROM budgets b
		LEFT JOIN categories c ON b.category_id = c.id
		LEFT JOIN transactions t ON t.category_id = b.category_id
		     AND t.user_id = b.user_id
		     AND t.type = 'expense'
		     AND date_trunc('month', t.date) = date_trunc('month', b.month)
		WHERE b.user_id = $1
		GROUP BY b.id, c.name
		ORDER BY b.id
	`
	rows, err := DB.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing budgets for user %d: %v", userID, err)
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.Category, &b.Amount, &b.Spent); err != nil {
			return nil, fmt.Errorf("error scanning budget: %v", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budgets: %v", err)
	}
	return budgets, nil
}

// CreateBudget inserts a budget for the current month and returns its id.
func CreateBudget(userID int64, categoryID *int64, amount float64) (int64, error) {
	query := `
		INSERT INTO budgets (user_id, category_id, month, amount)
		VALUES ($1, $2, now(), $3)
		RETURNING id
	`
	var id int64
	if err := DB.QueryRow(query, userID, categoryID, amount).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating budget: %v", err)
	}
	return id, nil
}

// GetBudgetOwner returns the owning user of a budget and whether the
// row exists.
func GetBudgetOwner(id int64) (int64, bool, error) {
	var owner int64
	err := DB.QueryRow(`SELECT user_id FROM budgets WHERE id = $1`, id).Scan(&owner)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("error getting budget %d owner: %v", id, err)
	}
	return owner, true, nil
}

func UpdateBudget(id int64, fields []UpdateField) error {
	return execUpdate(budgetsTable, fields, id)
}

func DeleteBudget(id int64) error {
	if _, err := DB.Exec(`DELETE FROM budgets WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting budget %d: %v", id, err)
	}
	return nil
}
