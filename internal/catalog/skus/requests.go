package skus

// Prices bind through pointers so a legitimate zero survives the
// required check.
type SKURequest struct {
	ProductID         int      `json:"product_id" binding:"required"`
	SkuCode           string   `json:"sku_code" binding:"required"`
	VariantName       *string  `json:"variant_name"`
	CostPrice         *float64 `json:"cost_price" binding:"required"`
	SellingPrice      *float64 `json:"selling_price" binding:"required"`
	TaxPercentage     *float64 `json:"tax_percentage"`
	InitialQuantity   *int     `json:"initial_quantity" binding:"omitempty,gte=0"`
	MinimumStockLevel *int     `json:"minimum_stock_level" binding:"omitempty,gte=0"`
	MaximumStockLevel *int     `json:"maximum_stock_level" binding:"omitempty,gte=0"`
}

type UpdateSKURequest struct {
	SkuCode       *string  `json:"sku_code"`
	VariantName   *string  `json:"variant_name"`
	CostPrice     *float64 `json:"cost_price"`
	SellingPrice  *float64 `json:"selling_price"`
	TaxPercentage *float64 `json:"tax_percentage"`
	IsActive      *bool    `json:"is_active"`
}
