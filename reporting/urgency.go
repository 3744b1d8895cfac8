package reporting

import "time"

// Urgency buckets for open repair requests, by days since they were raised.
const (
	UrgencyLow      = "low"
	UrgencyMedium   = "medium"
	UrgencyHigh     = "high"
	UrgencyCritical = "critical"
)

func UrgencyFor(daysOpen int) string {
	switch {
	case daysOpen < 3:
		return UrgencyLow
	case daysOpen < 7:
		return UrgencyMedium
	case daysOpen < 14:
		return UrgencyHigh
	default:
		return UrgencyCritical
	}
}

// DaysOpen counts whole days between when a record was raised and now. The
// caller passes now so one request uses one boundary.
func DaysOpen(createdAt, now time.Time) int {
	if now.Before(createdAt) {
		return 0
	}
	return int(now.Sub(createdAt).Hours() / 24)
}
