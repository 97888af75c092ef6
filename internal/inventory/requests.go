package inventory

type MovementRequest struct {
	SkuID           int     `json:"sku_id" binding:"required"`
	BatchID         *int    `json:"batch_id"`
	MovementType    string  `json:"movement_type" binding:"required"`
	Quantity        int     `json:"quantity" binding:"required,gt=0"`
	ReferenceNumber *string `json:"reference_number"`
	Notes           *string `json:"notes"`
}

// Dates arrive as plain YYYY-MM-DD strings, the way the admin UI sends
// them; the service parses them before they reach the store.
type BatchRequest struct {
	SkuID             int     `json:"sku_id" binding:"required"`
	BatchNumber       string  `json:"batch_number" binding:"required"`
	Quantity          int     `json:"quantity" binding:"required,gt=0"`
	ManufacturingDate *string `json:"manufacturing_date" binding:"omitempty,datetime=2006-01-02"`
	ExpiryDate        *string `json:"expiry_date" binding:"omitempty,datetime=2006-01-02"`
	ReceivedDate      *string `json:"received_date" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateLevelsRequest is a partial update: nil fields keep their
// previous value. Setting quantity here bypasses the movement log on
// purpose, it is a direct override.
type UpdateLevelsRequest struct {
	Quantity          *int `json:"quantity" binding:"omitempty,gte=0"`
	MinimumStockLevel *int `json:"minimum_stock_level" binding:"omitempty,gte=0"`
	MaximumStockLevel *int `json:"maximum_stock_level" binding:"omitempty,gte=0"`
}
