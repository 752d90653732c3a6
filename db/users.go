package db

import (
	"database/sql"
	"fmt"

	"github.com/iamkimedel22/SAVR/models"
)

// GetUserByEmail returns the user with the given email, or nil when no
// such user exists.
func GetUserByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, name
		FROM users
		WHERE email = $1
	`
	user := &models.User{}
	err := DB.QueryRow(query, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting user by email: %v", err)
	}
	return user, nil
}

// CreateUser inserts a new user and returns its id.
func CreateUser(email, passwordHash, name string) (int64, error) {
	query := `
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	if err := DB.QueryRow(query, email, passwordHash, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating user: %v", err)
	}
	return id, nil
}

// GetUserName returns the display name of a user, or "" when the user
// does not exist.
func GetUserName(userID int64) (string, error) {
	var name string
	err := DB.QueryRow(`SELECT name FROM users WHERE id = $1`, userID).Scan(&name)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("error getting user name for user %d: %v", userID, err)
	}
	return name, nil
}
