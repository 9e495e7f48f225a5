package models

import "time"

type Product struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Price       float64       `json:"price"`
	CategoryID  int           `json:"category_id"`
	Category    *Category     `json:"category,omitempty"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	Sizes       []ProductSize `json:"sizes"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Stock is declarative only; checkout never decrements it.
type ProductSize struct {
	Size  string `json:"size"`
	Stock int    `json:"stock"`
}

var validSizes = map[string]bool{
	"S": true, "M": true, "L": true, "XL": true, "XXL": true,
}

func IsValidSize(size string) bool {
	return validSizes[size]
}
