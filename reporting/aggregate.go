package reporting

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// Bucket is one group in a breakdown.
type Bucket struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// Summary is the shape every group-by report reduces to.
type Summary struct {
	Total     int64    `json:"total"`
	Breakdown []Bucket `json:"breakdown"`
}

// Summarize orders a set of group counts by count descending (key ascending
// on ties, so output is deterministic) and totals them.
func Summarize(counts map[string]int64) Summary {
	buckets := make([]Bucket, 0, len(counts))
	var total int64
	for key, count := range counts {
		buckets = append(buckets, Bucket{Key: key, Count: count})
		total += count
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Key < buckets[j].Key
	})
	return Summary{Total: total, Breakdown: buckets}
}

// Chronological orders buckets by key ascending, for monthly-trend breakdowns
// whose keys sort chronologically (e.g. "2026-01").
func Chronological(buckets []Bucket) []Bucket {
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Key < buckets[j].Key
	})
	return buckets
}

// Rate is part as a percentage of whole, rounded to two decimals. A zero
// whole yields 0, never a division error.
func Rate(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return Round2(float64(part) / float64(whole) * 100)
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// MoneyTotal accumulates currency amounts at full precision. Rounding to two
// decimals happens only when the total is presented.
type MoneyTotal struct {
	sum decimal.Decimal
}

func (m *MoneyTotal) Add(amount float64) {
	m.sum = m.sum.Add(decimal.NewFromFloat(amount))
}

func (m *MoneyTotal) Value() float64 {
	v, _ := m.sum.Round(2).Float64()
	return v
}

// Average computes the mean of the present values only. Missing (nil) values
// are excluded from the denominator; sums elsewhere treat them as zero. An
// all-missing input averages to 0.
func Average(values []*float64) float64 {
	sum := decimal.Zero
	var n int64
	for _, v := range values {
		if v == nil {
			continue
		}
		sum = sum.Add(decimal.NewFromFloat(*v))
		n++
	}
	if n == 0 {
		return 0
	}
	avg, _ := sum.Div(decimal.NewFromInt(n)).Round(2).Float64()
	return avg
}
