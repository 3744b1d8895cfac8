package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRate(t *testing.T) {
	assert.Equal(t, 0.0, Rate(5, 0), "zero whole must yield 0, not an error")
	assert.Equal(t, 0.0, Rate(0, 10))
	assert.Equal(t, 50.0, Rate(5, 10))
	assert.Equal(t, 33.33, Rate(1, 3))
	assert.Equal(t, 66.67, Rate(2, 3))
	assert.Equal(t, 100.0, Rate(10, 10))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.2345))
	assert.Equal(t, 1.24, Round2(1.236))
	assert.Equal(t, 0.0, Round2(0))
}

func TestSummarizeOrdersByCountDescending(t *testing.T) {
	summary := Summarize(map[string]int64{
		"pending":   3,
		"completed": 10,
		"cancelled": 3,
		"scheduled": 7,
	})

	assert.Equal(t, int64(23), summary.Total)
	assert.Equal(t, "completed", summary.Breakdown[0].Key)
	assert.Equal(t, "scheduled", summary.Breakdown[1].Key)
	// Ties break on key so output is deterministic.
	assert.Equal(t, "cancelled", summary.Breakdown[2].Key)
	assert.Equal(t, "pending", summary.Breakdown[3].Key)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(map[string]int64{})
	assert.Equal(t, int64(0), summary.Total)
	assert.Empty(t, summary.Breakdown)
}

func TestChronological(t *testing.T) {
	buckets := Chronological([]Bucket{
		{Key: "2026-03", Count: 9},
		{Key: "2026-01", Count: 2},
		{Key: "2026-02", Count: 5},
	})

	assert.Equal(t, "2026-01", buckets[0].Key)
	assert.Equal(t, "2026-02", buckets[1].Key)
	assert.Equal(t, "2026-03", buckets[2].Key)
}

func TestAverageExcludesMissingFromDenominator(t *testing.T) {
	a, b := 100.0, 200.0
	assert.Equal(t, 150.0, Average([]*float64{&a, nil, &b, nil}))
}

func TestAverageAllMissing(t *testing.T) {
	assert.Equal(t, 0.0, Average([]*float64{nil, nil}))
	assert.Equal(t, 0.0, Average(nil))
}

func TestMoneyTotalFullPrecision(t *testing.T) {
	var total MoneyTotal
	// 0.1 added ten times is exactly 1.00 in decimal arithmetic.
	for i := 0; i < 10; i++ {
		total.Add(0.1)
	}
	assert.Equal(t, 1.0, total.Value())

	var cents MoneyTotal
	cents.Add(1.005)
	cents.Add(2.005)
	assert.Equal(t, 3.01, cents.Value())
}
