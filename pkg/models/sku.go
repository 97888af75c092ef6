package models

import "time"

type SKU struct {
	ID            int     `json:"id" db:"id"`
	ProductID     int     `json:"product_id" db:"product_id"`
	SkuCode       string  `json:"sku_code" db:"sku_code"`
	VariantName   *string `json:"variant_name,omitempty" db:"variant_name"`
	CostPrice     float64 `json:"cost_price" db:"cost_price"`
	SellingPrice  float64 `json:"selling_price" db:"selling_price"`
	TaxPercentage float64 `json:"tax_percentage" db:"tax_percentage"`
	IsActive      bool    `json:"is_active" db:"is_active"`

	// Joined read fields, absent on bare rows.
	ProductName        *string `json:"product_name,omitempty" db:"product_name"`
	ProductDescription *string `json:"product_description,omitempty" db:"product_description"`
	CategoryName       *string `json:"category_name,omitempty" db:"category_name"`
	Quantity           *int    `json:"quantity,omitempty" db:"quantity"`
	MinimumStockLevel  *int    `json:"minimum_stock_level,omitempty" db:"minimum_stock_level"`
	MaximumStockLevel  *int    `json:"maximum_stock_level,omitempty" db:"maximum_stock_level"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
