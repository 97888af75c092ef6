package products

import "shoperp/internal/catalog/skus"

type ProductRequest struct {
	Name        string             `json:"name" binding:"required"`
	Description *string            `json:"description"`
	CategoryID  *int               `json:"category_id"`
	SKUs        []NestedSKURequest `json:"skus" binding:"omitempty,dive"`
}

// NestedSKURequest is a SKU created together with its product; the
// product id is not known yet, so it carries everything else.
type NestedSKURequest struct {
	SkuCode           string   `json:"sku_code" binding:"required"`
	VariantName       *string  `json:"variant_name"`
	CostPrice         *float64 `json:"cost_price" binding:"required"`
	SellingPrice      *float64 `json:"selling_price" binding:"required"`
	TaxPercentage     *float64 `json:"tax_percentage"`
	InitialQuantity   *int     `json:"initial_quantity" binding:"omitempty,gte=0"`
	MinimumStockLevel *int     `json:"minimum_stock_level" binding:"omitempty,gte=0"`
	MaximumStockLevel *int     `json:"maximum_stock_level" binding:"omitempty,gte=0"`
}

func (n NestedSKURequest) forProduct(productID int) skus.SKURequest {
	return skus.SKURequest{
		ProductID:         productID,
		SkuCode:           n.SkuCode,
		VariantName:       n.VariantName,
		CostPrice:         n.CostPrice,
		SellingPrice:      n.SellingPrice,
		TaxPercentage:     n.TaxPercentage,
		InitialQuantity:   n.InitialQuantity,
		MinimumStockLevel: n.MinimumStockLevel,
		MaximumStockLevel: n.MaximumStockLevel,
	}
}

type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CategoryID  *int    `json:"category_id"`
}
