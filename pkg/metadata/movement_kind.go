package metadata

import (
	"fmt"
	"strings"
)

type MovementKind string

const (
	MovementIn         MovementKind = "IN"
	MovementOut        MovementKind = "OUT"
	MovementAdjustment MovementKind = "ADJUSTMENT"
)

func NewMovementKind(value string) (MovementKind, error) {
	kind := MovementKind(strings.ToUpper(strings.TrimSpace(value)))
	if !kind.isValid() {
		return "", fmt.Errorf(
			"invalid movement type: %s, must be %s, %s or %s",
			value, MovementIn, MovementOut, MovementAdjustment,
		)
	}
	return kind, nil
}

func (k MovementKind) isValid() bool {
	switch k {
	case MovementIn, MovementOut, MovementAdjustment:
		return true
	default:
		return false
	}
}

// Delta converts a positive movement quantity into the signed change
// applied to the on-hand quantity. OUT subtracts, everything else adds.
func (k MovementKind) Delta(quantity int) int {
	if k == MovementOut {
		return -quantity
	}
	return quantity
}

func (k MovementKind) String() string {
	return string(k)
}
