package metadata

import "fmt"

type AlertKind string

const (
	AlertOutOfStock   AlertKind = "OUT_OF_STOCK"
	AlertLowStock     AlertKind = "LOW_STOCK"
	AlertExpiringSoon AlertKind = "EXPIRING_SOON"
)

func NewAlertKind(value string) (AlertKind, error) {
	kind := AlertKind(value)
	if !kind.isValid() {
		return "", fmt.Errorf("invalid alert type: %s", value)
	}
	return kind, nil
}

func (k AlertKind) isValid() bool {
	switch k {
	case AlertOutOfStock, AlertLowStock, AlertExpiringSoon:
		return true
	default:
		return false
	}
}

// ThresholdAlertKind picks the alert raised when a write leaves the
// on-hand quantity at or below the reorder threshold.
func ThresholdAlertKind(quantity int) AlertKind {
	if quantity == 0 {
		return AlertOutOfStock
	}
	return AlertLowStock
}

func (k AlertKind) String() string {
	return string(k)
}
