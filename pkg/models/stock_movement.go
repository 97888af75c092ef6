package models

import (
	"time"

	"shoperp/pkg/metadata"
)

// StockMovement is an append-only ledger entry. Rows are never updated
// or deleted once written.
type StockMovement struct {
	ID              int                   `json:"id" db:"id"`
	SkuID           int                   `json:"sku_id" db:"sku_id"`
	BatchID         *int                  `json:"batch_id,omitempty" db:"batch_id"`
	MovementType    metadata.MovementKind `json:"movement_type" db:"movement_type"`
	Quantity        int                   `json:"quantity" db:"quantity"`
	ReferenceNumber *string               `json:"reference_number,omitempty" db:"reference_number"`
	Notes           *string               `json:"notes,omitempty" db:"notes"`

	// Joined read fields.
	SkuCode     *string `json:"sku_code,omitempty" db:"sku_code"`
	ProductName *string `json:"product_name,omitempty" db:"product_name"`
	BatchNumber *string `json:"batch_number,omitempty" db:"batch_number"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
