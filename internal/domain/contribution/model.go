package contribution

import "fmt"

// HighContributionThreshold is the lifetime total above which a player is
// considered a high contributor. Policy constant, not configurable.
const HighContributionThreshold = 10000.0

// FilterMode selects which players a metrics view keeps.
type FilterMode string

const (
	FilterAll      FilterMode = "all"
	FilterActive   FilterMode = "active"
	FilterInactive FilterMode = "inactive"
	FilterHigh     FilterMode = "high"
)

var AllFilterModes = map[FilterMode]struct{}{
	FilterAll:      {},
	FilterActive:   {},
	FilterInactive: {},
	FilterHigh:     {},
}

// MonthlyAmount is one recorded contribution for a calendar period.
// A period with no entry is equivalent to an entry with amount 0.
type MonthlyAmount struct {
	Year   int
	Month  int
	Amount float64
}

func (m MonthlyAmount) Validate() error {
	if m.Year <= 0 {
		return fmt.Errorf("contribution year must be greater than zero")
	}
	if m.Month < 1 || m.Month > 12 {
		return fmt.Errorf("contribution month must be within 1..12, got %d", m.Month)
	}
	if m.Amount < 0 {
		return fmt.Errorf("contribution amount cannot be negative")
	}

	return nil
}

// PlayerMetric is the per-player contribution record served by the accounts
// service. PlayerID is the stable identity; PlayerName is display data.
type PlayerMetric struct {
	PlayerID   string
	PlayerName string
	EmployeeID string
	Active     bool
	Amounts    []MonthlyAmount
}

// Stats are the figures shown on the dashboard header cards.
type Stats struct {
	TotalPlayers        int
	ActivePlayers       int
	TotalContributions  float64
	AveragePerPlayer    float64
	MonthlyContribution float64
}

// PlayerStats is the per-row projection of a PlayerMetric for one viewed
// period. Derived, never persisted.
type PlayerStats struct {
	TotalContribution  float64
	ActiveMonths       int
	CurrentMonthAmount float64
	Status             string
}

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)
