package models

import "time"

// CartItem is one line in a user's cart. A user holds at most one line
// per (product_id, selected_size) pair; adds merge into the existing
// line by incrementing quantity.
type CartItem struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	ProductID    int       `json:"product_id"`
	Product      *Product  `json:"product,omitempty"`
	Quantity     int       `json:"quantity"`
	SelectedSize string    `json:"selected_size"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
