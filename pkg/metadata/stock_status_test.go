package metadata

import (
	"testing"
)

func TestStockStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		minimum  int
		want     StockStatus
	}{
		{"zero quantity", 0, 10, StockStatusOut},
		{"below minimum", 4, 10, StockStatusLow},
		{"at minimum", 10, 10, StockStatusLow},
		{"above minimum", 11, 10, StockStatusIn},
		{"zero minimum with stock", 5, 0, StockStatusIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StockStatusFor(tt.quantity, tt.minimum); got != tt.want {
				t.Errorf("StockStatusFor(%d, %d) = %q, want %q", tt.quantity, tt.minimum, got, tt.want)
			}
		})
	}
}

func TestThresholdAlertKind(t *testing.T) {
	if got := ThresholdAlertKind(0); got != AlertOutOfStock {
		t.Errorf("ThresholdAlertKind(0) = %q, want %q", got, AlertOutOfStock)
	}
	if got := ThresholdAlertKind(3); got != AlertLowStock {
		t.Errorf("ThresholdAlertKind(3) = %q, want %q", got, AlertLowStock)
	}
}
