package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyBoundaries(t *testing.T) {
	th := Thresholds{Available: 5, Moderate: 10, Busy: 15}

	assert.Equal(t, LoadAvailable, th.Classify(0))
	assert.Equal(t, LoadAvailable, th.Classify(4))
	assert.Equal(t, LoadModerate, th.Classify(5))
	assert.Equal(t, LoadModerate, th.Classify(9))
	assert.Equal(t, LoadBusy, th.Classify(10))
	assert.Equal(t, LoadBusy, th.Classify(14))
	assert.Equal(t, LoadOverloaded, th.Classify(15))
	assert.Equal(t, LoadOverloaded, th.Classify(100))
}

func TestClassifyMonotonic(t *testing.T) {
	th := Thresholds{Available: 5, Moderate: 10, Busy: 15}
	rank := map[string]int{
		LoadAvailable:  0,
		LoadModerate:   1,
		LoadBusy:       2,
		LoadOverloaded: 3,
	}

	prev := -1
	for n := 0; n <= 40; n++ {
		current := rank[th.Classify(n)]
		assert.GreaterOrEqual(t, current, prev, "classification must never drop as load grows (n=%d)", n)
		prev = current
	}
}

func TestLoadThresholdsDefaults(t *testing.T) {
	th := LoadThresholds()
	assert.Equal(t, 5, th.Available)
	assert.Equal(t, 10, th.Moderate)
	assert.Equal(t, 15, th.Busy)
}

func TestLoadThresholdsFromEnv(t *testing.T) {
	t.Setenv("WORKLOAD_AVAILABLE_MAX", "3")
	t.Setenv("WORKLOAD_MODERATE_MAX", "6")
	t.Setenv("WORKLOAD_BUSY_MAX", "9")

	th := LoadThresholds()
	assert.Equal(t, Thresholds{Available: 3, Moderate: 6, Busy: 9}, th)
	assert.Equal(t, LoadOverloaded, th.Classify(9))
}

func TestBalanceReportFlags(t *testing.T) {
	th := Thresholds{Available: 5, Moderate: 10, Busy: 15}
	loads := []ManagerLoad{
		{ManagerID: 1, AssignedClients: 20},
		{ManagerID: 2, AssignedClients: 0},
		{ManagerID: 3, AssignedClients: 12},
		{ManagerID: 4, AssignedClients: 5},
	}

	ranked, average := BalanceReport(loads, th, 5)

	// Mean of 0, 5, 12, 20.
	assert.Equal(t, 9.25, average)

	// Ascending by load: least loaded first for manual assignment.
	require.Len(t, ranked, 4)
	assert.Equal(t, uint(2), ranked[0].ManagerID)
	assert.Equal(t, uint(4), ranked[1].ManagerID)
	assert.Equal(t, uint(3), ranked[2].ManagerID)
	assert.Equal(t, uint(1), ranked[3].ManagerID)

	// 0 < max(1, 9.25-5) -> underutilized; 20 > 9.25+5 -> overloaded.
	assert.Equal(t, FlagUnderutilized, ranked[0].Flag)
	assert.Equal(t, FlagBalanced, ranked[1].Flag)
	assert.Equal(t, FlagBalanced, ranked[2].Flag)
	assert.Equal(t, FlagOverloaded, ranked[3].Flag)

	assert.Equal(t, LoadOverloaded, ranked[3].LoadLevel)
	assert.Equal(t, LoadAvailable, ranked[0].LoadLevel)
}

func TestBalanceReportUnderutilizedFloor(t *testing.T) {
	// Average 1, delta 5: the floor is max(1, -4) = 1, so a zero-load manager
	// is still flagged while a one-load manager is not.
	loads := []ManagerLoad{
		{ManagerID: 1, AssignedClients: 0},
		{ManagerID: 2, AssignedClients: 2},
	}

	ranked, average := BalanceReport(loads, Thresholds{Available: 5, Moderate: 10, Busy: 15}, 5)

	assert.Equal(t, 1.0, average)
	assert.Equal(t, FlagUnderutilized, ranked[0].Flag)
	assert.Equal(t, FlagBalanced, ranked[1].Flag)
}

func TestBalanceReportEmpty(t *testing.T) {
	ranked, average := BalanceReport(nil, LoadThresholds(), 5)
	assert.Empty(t, ranked)
	assert.Equal(t, 0.0, average)
}
