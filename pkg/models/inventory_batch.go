package models

import (
	"time"

	"shoperp/pkg/metadata"
)

type InventoryBatch struct {
	ID                int        `json:"id" db:"id"`
	SkuID             int        `json:"sku_id" db:"sku_id"`
	BatchNumber       string     `json:"batch_number" db:"batch_number"`
	Quantity          int        `json:"quantity" db:"quantity"`
	ManufacturingDate *time.Time `json:"manufacturing_date,omitempty" db:"manufacturing_date"`
	ExpiryDate        *time.Time `json:"expiry_date,omitempty" db:"expiry_date"`
	ReceivedDate      *time.Time `json:"received_date,omitempty" db:"received_date"`

	// Joined read fields.
	SkuCode     *string `json:"sku_code,omitempty" db:"sku_code"`
	ProductName *string `json:"product_name,omitempty" db:"product_name"`

	// Derived from ExpiryDate at read time, never stored.
	BatchStatus metadata.BatchStatus `json:"batch_status,omitempty" db:"batch_status"`
}
