package metadata

type StockStatus string

const (
	StockStatusOut StockStatus = "OUT_OF_STOCK"
	StockStatusLow StockStatus = "LOW_STOCK"
	StockStatusIn  StockStatus = "IN_STOCK"
)

// StockStatusFor derives the dashboard status of an inventory row.
// Never persisted, computed on every read.
func StockStatusFor(quantity, minimumStockLevel int) StockStatus {
	switch {
	case quantity == 0:
		return StockStatusOut
	case quantity <= minimumStockLevel:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

func (s StockStatus) String() string {
	return string(s)
}
