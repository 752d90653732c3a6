package models

// Category is a transaction category. UserID nil marks a global default
// shared by every user; global rows cannot be mutated through the API.
type Category struct {
	ID     int64   `json:"id"`
	UserID *int64  `json:"user_id"`
	Name   string  `json:"name"`
	Color  *string `json:"color,omitempty"`
}
