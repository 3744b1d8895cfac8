package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUrgencyFor(t *testing.T) {
	assert.Equal(t, UrgencyLow, UrgencyFor(0))
	assert.Equal(t, UrgencyLow, UrgencyFor(2))
	assert.Equal(t, UrgencyMedium, UrgencyFor(3))
	assert.Equal(t, UrgencyMedium, UrgencyFor(6))
	assert.Equal(t, UrgencyHigh, UrgencyFor(7))
	assert.Equal(t, UrgencyHigh, UrgencyFor(13))
	assert.Equal(t, UrgencyCritical, UrgencyFor(14))
	assert.Equal(t, UrgencyCritical, UrgencyFor(60))
}

func TestDaysOpen(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysOpen(now, now))
	assert.Equal(t, 0, DaysOpen(now.Add(time.Hour), now), "future timestamps clamp to zero")
	assert.Equal(t, 1, DaysOpen(now.AddDate(0, 0, -1), now))
	assert.Equal(t, 14, DaysOpen(now.AddDate(0, 0, -14), now))
}
