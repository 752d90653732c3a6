package db

import "fmt"

// InsertLog appends an audit log entry for a user action. Entries are
// write-only; nothing in the API reads them back.
func InsertLog(userID int64, action string) error {
	query := `
		INSERT INTO logs (user_id, action)
		VALUES ($1, $2)
	`
	if _, err := DB.Exec(query, userID, action); err != nil {
		return fmt.Errorf("error inserting log for user %d: %v", userID, err)
	}
	return nil
}
