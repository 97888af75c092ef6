package metadata

import "time"

type BatchStatus string

const (
	BatchValid        BatchStatus = "VALID"
	BatchExpiringSoon BatchStatus = "EXPIRING_SOON"
	BatchExpired      BatchStatus = "EXPIRED"
)

// ExpiryWindow is how far ahead a batch counts as expiring soon.
const ExpiryWindow = 30 * 24 * time.Hour

// BatchStatusFor derives the status of a batch from its expiry date.
// Batches without an expiry date have no status at all.
func BatchStatusFor(expiryDate *time.Time, now time.Time) BatchStatus {
	if expiryDate == nil {
		return ""
	}
	today := now.Truncate(24 * time.Hour)
	expiry := expiryDate.Truncate(24 * time.Hour)
	switch {
	case expiry.Before(today):
		return BatchExpired
	case !expiry.After(today.Add(ExpiryWindow)):
		return BatchExpiringSoon
	default:
		return BatchValid
	}
}

func (s BatchStatus) String() string {
	return string(s)
}
