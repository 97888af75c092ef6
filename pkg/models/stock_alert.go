package models

import (
	"time"

	"shoperp/pkg/metadata"
)

type StockAlert struct {
	ID         int                `json:"id" db:"id"`
	SkuID      int                `json:"sku_id" db:"sku_id"`
	AlertType  metadata.AlertKind `json:"alert_type" db:"alert_type"`
	Message    string             `json:"message" db:"message"`
	IsResolved bool               `json:"is_resolved" db:"is_resolved"`
	CreatedAt  time.Time          `json:"created_at" db:"created_at"`
	ResolvedAt *time.Time         `json:"resolved_at,omitempty" db:"resolved_at"`

	// Joined read fields.
	SkuCode         *string `json:"sku_code,omitempty" db:"sku_code"`
	ProductName     *string `json:"product_name,omitempty" db:"product_name"`
	CurrentQuantity *int    `json:"current_quantity,omitempty" db:"current_quantity"`
}
