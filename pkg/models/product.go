package models

import "time"

type Product struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Description  *string   `json:"description,omitempty" db:"description"`
	CategoryID   *int      `json:"category_id,omitempty" db:"category_id"`
	CategoryName *string   `json:"category_name,omitempty" db:"category_name"`
	SKUs         []SKU     `json:"skus" db:"-"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
