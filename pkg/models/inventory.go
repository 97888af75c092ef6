package models

import "shoperp/pkg/metadata"

type Inventory struct {
	ID                int  `json:"id" db:"id"`
	SkuID             int  `json:"sku_id" db:"sku_id"`
	Quantity          int  `json:"quantity" db:"quantity"`
	MinimumStockLevel int  `json:"minimum_stock_level" db:"minimum_stock_level"`
	MaximumStockLevel *int `json:"maximum_stock_level,omitempty" db:"maximum_stock_level"`

	// Joined read fields.
	SkuCode      *string  `json:"sku_code,omitempty" db:"sku_code"`
	VariantName  *string  `json:"variant_name,omitempty" db:"variant_name"`
	SellingPrice *float64 `json:"selling_price,omitempty" db:"selling_price"`
	ProductName  *string  `json:"product_name,omitempty" db:"product_name"`
	CategoryName *string  `json:"category_name,omitempty" db:"category_name"`

	StockStatus metadata.StockStatus `json:"stock_status,omitempty" db:"stock_status"`
}
