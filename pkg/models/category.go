package models

import "time"

type Category struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Description  *string   `json:"description,omitempty" db:"description"`
	ParentID     *int      `json:"parent_id,omitempty" db:"parent_id"`
	ParentName   *string   `json:"parent_name,omitempty" db:"parent_name"`
	ProductCount int       `json:"product_count" db:"product_count"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
