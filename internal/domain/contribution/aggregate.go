package contribution

import (
	"sort"
	"time"
)

// AmountFor returns the recorded amount for one calendar period. Absent
// periods count as zero, never as an error.
func AmountFor(player PlayerMetric, year, month int) float64 {
	for _, entry := range player.Amounts {
		if entry.Year == year && entry.Month == month {
			return entry.Amount
		}
	}

	return 0
}

// Total sums every recorded amount for the player. A player with no recorded
// periods totals zero.
func Total(player PlayerMetric) float64 {
	total := 0.0
	for _, entry := range player.Amounts {
		total += entry.Amount
	}

	return total
}

// ActiveMonths counts periods whose amount is strictly greater than zero.
// A recorded zero is indistinguishable from an absent period.
func ActiveMonths(player PlayerMetric) int {
	count := 0
	for _, entry := range player.Amounts {
		if entry.Amount > 0 {
			count++
		}
	}

	return count
}

func IsActiveForPeriod(player PlayerMetric, year, month int) bool {
	return AmountFor(player, year, month) > 0
}

// Filter keeps the players matching mode for the given period. FilterActive
// and FilterInactive partition the input; FilterHigh keeps lifetime totals
// above HighContributionThreshold. Unknown modes behave like FilterAll.
func Filter(players []PlayerMetric, mode FilterMode, year, month int) []PlayerMetric {
	out := make([]PlayerMetric, 0, len(players))
	for _, player := range players {
		switch mode {
		case FilterActive:
			if !IsActiveForPeriod(player, year, month) {
				continue
			}
		case FilterInactive:
			if IsActiveForPeriod(player, year, month) {
				continue
			}
		case FilterHigh:
			if Total(player) <= HighContributionThreshold {
				continue
			}
		}
		out = append(out, player)
	}

	return out
}

// Aggregate derives the dashboard statistics for one viewed period.
// AveragePerPlayer is zero for an empty roster.
func Aggregate(players []PlayerMetric, year, month int) Stats {
	stats := Stats{TotalPlayers: len(players)}
	for _, player := range players {
		if IsActiveForPeriod(player, year, month) {
			stats.ActivePlayers++
		}
		stats.TotalContributions += Total(player)
		stats.MonthlyContribution += AmountFor(player, year, month)
	}
	if stats.TotalPlayers > 0 {
		stats.AveragePerPlayer = stats.TotalContributions / float64(stats.TotalPlayers)
	}

	return stats
}

// History flattens a player's record into period rows, optionally restricted
// to one year, most recent first. Months compare numerically: month 10 sorts
// before month 9 of the same year.
func History(player PlayerMetric, yearFilter int) []MonthlyAmount {
	out := make([]MonthlyAmount, 0, len(player.Amounts))
	for _, entry := range player.Amounts {
		if yearFilter > 0 && entry.Year != yearFilter {
			continue
		}
		out = append(out, entry)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Month > out[j].Month
	})

	return out
}

// StatsFor projects one player's record onto a viewed period.
func StatsFor(player PlayerMetric, year, month int) PlayerStats {
	current := AmountFor(player, year, month)
	status := StatusInactive
	if current > 0 {
		status = StatusActive
	}

	return PlayerStats{
		TotalContribution:  Total(player),
		ActiveMonths:       ActiveMonths(player),
		CurrentMonthAmount: current,
		Status:             status,
	}
}

// IsDue reports whether the viewed cell should carry the due marker: the
// player is administratively active, has nothing recorded for the viewed
// period, and the viewed period is the current calendar period. Historical
// months are never due.
func IsDue(player PlayerMetric, viewYear, viewMonth int, now time.Time) bool {
	if !player.Active {
		return false
	}
	if AmountFor(player, viewYear, viewMonth) > 0 {
		return false
	}

	return viewYear == now.Year() && viewMonth == int(now.Month())
}
