package memory

import (
	"time"

	"github.com/clubdeskhq/clubdesk/internal/domain/clubrule"
	"github.com/clubdeskhq/clubdesk/internal/domain/prize"
	"github.com/clubdeskhq/clubdesk/internal/domain/role"
	"github.com/clubdeskhq/clubdesk/internal/domain/venue"
)

const TournamentIDAnniversaryCup = "anniversary-cup-2025"

func SeedVenues() []venue.Venue {
	now := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	return []venue.Venue{
		{ID: "venue-senayan", Name: "Senayan Mini Soccer", Address: "Jl. Asia Afrika, Jakarta", Active: true, CreatedAt: now, UpdatedAt: now},
		{ID: "venue-kuningan", Name: "Kuningan Futsal Hall", Address: "Jl. HR Rasuna Said, Jakarta", Active: true, CreatedAt: now, UpdatedAt: now},
		{ID: "venue-lapangan-c", Name: "Lapangan C", Address: "Jl. Pintu Satu Senayan, Jakarta", Active: false, CreatedAt: now, UpdatedAt: now},
	}
}

func SeedClubRules() []clubrule.ClubRule {
	now := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	return []clubrule.ClubRule{
		{ID: "rule-01", Description: "Monthly contributions are due on the 5th of every month.", CreatedAt: now, UpdatedAt: now},
		{ID: "rule-02", Description: "Players absent three sessions in a row forfeit their starting spot.", CreatedAt: now, UpdatedAt: now},
		{ID: "rule-03", Description: "Venue booking fees are split among attending players.", CreatedAt: now, UpdatedAt: now},
	}
}

func SeedPrizes() []prize.Prize {
	return []prize.Prize{
		{
			ID:           "prize-champion",
			TournamentID: TournamentIDAnniversaryCup,
			Type:         prize.TypeTeam,
			TeamID:       "team-red",
			TeamName:     "Red Dragons",
			PositionRank: 1,
			Amount:       1500000,
			Category:     prize.CategoryChampion,
			Description:  "Anniversary cup champions",
		},
		{
			ID:           "prize-runner-up",
			TournamentID: TournamentIDAnniversaryCup,
			Type:         prize.TypeTeam,
			TeamID:       "team-blue",
			TeamName:     "Blue Sharks",
			PositionRank: 2,
			Amount:       750000,
			Category:     prize.Category("RUNNER_UP"),
		},
		{
			ID:           "prize-top-scorer",
			TournamentID: TournamentIDAnniversaryCup,
			Type:         prize.TypePlayer,
			PlayerID:     "player-dimas",
			PlayerName:   "Dimas Prasetyo",
			EmployeeID:   "E-100",
			PositionRank: 1,
			Amount:       250000,
			Category:     prize.CategoryTopScorer,
		},
	}
}

func SeedRoles() []role.Role {
	return []role.Role{
		{ID: "role-admin", Name: "Administrator", Permissions: []string{"venues.write", "club-rules.write", "prizes.write", "roles.write", "reports.read"}},
		{ID: "role-treasurer", Name: "Treasurer", Permissions: []string{"reports.read", "club-rules.read"}},
		{ID: "role-member", Name: "Member", Permissions: []string{"reports.read"}},
	}
}
