package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/iamkimedel22/SAVR/models"
)

const transactionsTable = "transactions"

// ListTransactions returns all of a user's transactions, newest first.
// Transactions whose category link is gone fall back to "Other".
func ListTransactions(userID int64) ([]models.Transaction, error) {
	query := `
		SELECT t.id, COALESCE(c.name, 'Other') AS category, t.amount, t.type, t.date, t.note
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1
		ORDER BY t.date DESC
	`
	rows, err := DB.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing transactions for user %d: %v", userID, err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		var date time.Time
		if err := rows.Scan(&t.ID, &t.Category, &t.Amount, &t.Type, &date, &t.Note); err != nil {
			return nil, fmt.Errorf("error scanning transaction: %v", err)
		}
		t.Date = date.Format("2006-01-02")
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %v", err)
	}
	return transactions, nil
}

// CreateTransaction inserts a transaction and returns its id. The
// category link may be nil when the supplied name did not resolve.
func CreateTransaction(userID int64, categoryID *int64, amount float64, txType, date, note string) (int64, error) {
	query := `
		INSERT INTO transactions (user_id, category_id, amount, type, date, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	var id int64
	if err := DB.QueryRow(query, userID, categoryID, amount, txType, date, note).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating transaction: %v", err)
	}
	return id, nil
}

// GetTransactionOwner returns the owning user of a transaction and
// whether the row exists.
func GetTransactionOwner(id int64) (int64, bool, error) {
	var owner int64
	err := DB.QueryRow(`SELECT user_id FROM transactions WHERE id = $1`, id).Scan(&owner)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("error getting transaction %d owner: %v", id, err)
	}
	return owner, true, nil
}

func UpdateTransaction(id int64, fields []UpdateField) error {
	return execUpdate(transactionsTable, fields, id)
}

func DeleteTransaction(id int64) error {
	if _, err := DB.Exec(`DELETE FROM transactions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting transaction %d: %v", id, err)
	}
	return nil
}
