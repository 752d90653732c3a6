package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/iamkimedel22/SAVR/models"
)

const goalsTable = "savings_goals"

// ListGoals returns all of a user's savings goals ordered by deadline.
// Percentage and remaining are derived by the handler.
func ListGoals(userID int64) ([]models.SavingsGoal, error) {
	query := `
		SELECT id, title, target_amount, current_amount, deadline
		FROM savings_goals
		WHERE user_id = $1
		ORDER BY deadline ASC
	`
	rows, err := DB.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing goals for user %d: %v", userID, err)
	}
	defer rows.Close()

	var goals []models.SavingsGoal
	for rows.Next() {
		var g models.SavingsGoal
		var deadline time.Time
		if err := rows.Scan(&g.ID, &g.Title, &g.TargetAmount, &g.CurrentAmount, &deadline); err != nil {
			return nil, fmt.Errorf("error scanning goal: %v", err)
		}
		g.Deadline = deadline.Format("2006-01-02")
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goals: %v", err)
	}
	return goals, nil
}

// CreateGoal inserts a savings goal and returns its id.
func CreateGoal(userID int64, title string, targetAmount, currentAmount float64, deadline string) (int64, error) {
	query := `
		INSERT INTO savings_goals (user_id, title, target_amount, current_amount, deadline)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	if err := DB.QueryRow(query, userID, title, targetAmount, currentAmount, deadline).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating goal: %v", err)
	}
	return id, nil
}

// GetGoalOwner returns the owning user of a savings goal and whether
// the row exists.
func GetGoalOwner(id int64) (int64, bool, error) {
	var owner int64
	err := DB.QueryRow(`SELECT user_id FROM savings_goals WHERE id = $1`, id).Scan(&owner)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("error getting goal %d owner: %v", id, err)
	}
	return owner, true, nil
}

func UpdateGoal(id int64, fields []UpdateField) error {
	return execUpdate(goalsTable, fields, id)
}

func DeleteGoal(id int64) error {
	if _, err := DB.Exec(`DELETE FROM savings_goals WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting goal %d: %v", id, err)
	}
	return nil
}
