package reporting

import (
	"os"
	"sort"
	"strconv"
)

// Load levels, least to most loaded.
const (
	LoadAvailable  = "available"
	LoadModerate   = "moderate"
	LoadBusy       = "busy"
	LoadOverloaded = "overloaded"
)

// Balance flags for the account-manager workload report. The report is
// advisory; no reassignment is computed automatically.
const (
	FlagBalanced      = "balanced"
	FlagOverloaded    = "overloaded"
	FlagUnderutilized = "underutilized"
)

// Thresholds are the upper exclusive bounds for each load level: open counts
// below Available classify as available, below Moderate as moderate, below
// Busy as busy, everything else as overloaded.
type Thresholds struct {
	Available int
	Moderate  int
	Busy      int
}

// LoadThresholds reads the classifier configuration from the environment,
// falling back to 5/10/15.
func LoadThresholds() Thresholds {
	return Thresholds{
		Available: envInt("WORKLOAD_AVAILABLE_MAX", 5),
		Moderate:  envInt("WORKLOAD_MODERATE_MAX", 10),
		Busy:      envInt("WORKLOAD_BUSY_MAX", 15),
	}
}

// BalanceDelta is how far from the cohort average an assignment count may
// drift before the manager is flagged.
func BalanceDelta() float64 {
	return float64(envInt("WORKLOAD_BALANCE_DELTA", 5))
}

func (t Thresholds) Classify(openCount int) string {
	switch {
	case openCount < t.Available:
		return LoadAvailable
	case openCount < t.Moderate:
		return LoadModerate
	case openCount < t.Busy:
		return LoadBusy
	default:
		return LoadOverloaded
	}
}

// ManagerLoad is one account manager's row in the workload distribution
// report.
type ManagerLoad struct {
	ManagerID       uint   `json:"manager_id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	AssignedClients int64  `json:"assigned_clients"`
	LoadLevel       string `json:"load_level"`
	Flag            string `json:"flag"`
}

// BalanceReport classifies each manager, flags the ones further than delta
// from the cohort average, and sorts ascending by load so the least-loaded
// manager is first. Returns the rows and the cohort average.
func BalanceReport(loads []ManagerLoad, t Thresholds, delta float64) ([]ManagerLoad, float64) {
	if len(loads) == 0 {
		return loads, 0
	}

	var total int64
	for _, l := range loads {
		total += l.AssignedClients
	}
	average := float64(total) / float64(len(loads))

	underFloor := average - delta
	if underFloor < 1 {
		underFloor = 1
	}

	for i := range loads {
		loads[i].LoadLevel = t.Classify(int(loads[i].AssignedClients))
		switch {
		case float64(loads[i].AssignedClients) > average+delta:
			loads[i].Flag = FlagOverloaded
		case float64(loads[i].AssignedClients) < underFloor:
			loads[i].Flag = FlagUnderutilized
		default:
			loads[i].Flag = FlagBalanced
		}
	}

	sort.Slice(loads, func(i, j int) bool {
		if loads[i].AssignedClients != loads[j].AssignedClients {
			return loads[i].AssignedClients < loads[j].AssignedClients
		}
		return loads[i].ManagerID < loads[j].ManagerID
	})

	return loads, Round2(average)
}

func envInt(name string, fallback int) int {
	if raw := os.Getenv(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}
