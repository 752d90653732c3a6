package db

import (
	"database/sql"
	"fmt"

	"github.com/iamkimedel22/SAVR/models"
)

const categoriesTable = "categories"

// ListCategoriesForUser returns the caller's own categories plus the
// global defaults, ordered by name. Deduplication happens in the
// handler.
func ListCategoriesForUser(userID int64) ([]models.Category, error) {
	query := `
		SELECT id, user_id, name, color
		FROM categories
		WHERE user_id = $1 OR user_id IS NULL
		ORDER BY name
	`
	rows, err := DB.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing categories for user %d: %v", userID, err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Color); err != nil {
			return nil, fmt.Errorf("error scanning category: %v", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %v", err)
	}
	return categories, nil
}

// ResolveCategoryID maps a category name to an id within the caller's
// effective list, preferring a user-owned row over a global one.
// A name with no match resolves to nil rather than an error.
func ResolveCategoryID(name string, userID int64) (*int64, error) {
	query := `
		SELECT id
		FROM categories
		WHERE name = $1 AND (user_id = $2 OR user_id IS NULL)
		ORDER BY user_id NULLS LAST
		LIMIT 1
	`
	var id int64
	err := DB.QueryRow(query, name, userID).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving category %q: %v", name, err)
	}
	return &id, nil
}

// CategoryNameExists reports whether a name is already taken in the
// caller's effective category list.
func CategoryNameExists(name string, userID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM categories
			WHERE name = $1 AND (user_id = $2 OR user_id IS NULL)
		)
	`
	var exists bool
	if err := DB.QueryRow(query, name, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking category name %q: %v", name, err)
	}
	return exists, nil
}

// CreateCategory inserts a user-owned category and returns its id.
func CreateCategory(userID int64, name string, color *string) (int64, error) {
	query := `
		INSERT INTO categories (user_id, name, color)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	if err := DB.QueryRow(query, userID, name, color).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating category: %v", err)
	}
	return id, nil
}

// GetCategoryOwner returns the owning user of a category (nil for a
// global default) and whether the row exists at all.
func GetCategoryOwner(id int64) (*int64, bool, error) {
	var owner *int64
	err := DB.QueryRow(`SELECT user_id FROM categories WHERE id = $1`, id).Scan(&owner)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("error getting category %d owner: %v", id, err)
	}
	return owner, true, nil
}

func UpdateCategory(id int64, fields []UpdateField) error {
	return execUpdate(categoriesTable, fields, id)
}

func DeleteCategory(id int64) error {
	if _, err := DB.Exec(`DELETE FROM categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting category %d: %v", id, err)
	}
	return nil
}
