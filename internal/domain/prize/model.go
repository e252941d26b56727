package prize

import (
	"fmt"
	"strings"
)

// Type scopes a prize to either a team or an individual player, never both.
type Type string

const (
	TypeTeam   Type = "TEAM"
	TypePlayer Type = "PLAYER"
)

// Category tags a prize for display. Free-form values are allowed; the
// single-winner categories below get dedicated badges.
type Category string

const (
	CategoryTopScorer          Category = "TOP_SCORER"
	CategoryGoldenBoot         Category = "GOLDEN_BOOT"
	CategoryBestPlayer         Category = "BEST_PLAYER"
	CategoryPlayerOfTournament Category = "PLAYER_OF_TOURNAMENT"
	CategoryTopAssistProvider  Category = "TOP_ASSIST_PROVIDER"
	CategoryBestGoalkeeper     Category = "BEST_GOALKEEPER"
	CategoryBestDefender       Category = "BEST_DEFENDER"
	CategoryFairPlayAward      Category = "FAIR_PLAY_AWARD"
	CategoryYoungPlayerAward   Category = "YOUNG_PLAYER_AWARD"
	CategoryChampion           Category = "CHAMPION"
)

// Prize is an award record tied to a tournament. Exactly one of the team
// fields or the player fields is populated, matching Type.
type Prize struct {
	ID           string
	TournamentID string
	Type         Type
	TeamID       string
	TeamName     string
	PlayerID     string
	PlayerName   string
	EmployeeID   string
	PositionRank int
	Amount       float64
	Category     Category
	Description  string
	ImageLinks   []string
}

func (p Prize) Validate() error {
	if strings.TrimSpace(p.TournamentID) == "" {
		return fmt.Errorf("prize tournament id is required")
	}
	if p.PositionRank < 1 {
		return fmt.Errorf("prize position rank must be at least 1")
	}
	if p.Amount < 0 {
		return fmt.Errorf("prize amount cannot be negative")
	}

	hasTeam := strings.TrimSpace(p.TeamID) != ""
	hasPlayer := strings.TrimSpace(p.PlayerID) != ""
	switch p.Type {
	case TypeTeam:
		if !hasTeam {
			return fmt.Errorf("team prize requires a team id")
		}
		if hasPlayer {
			return fmt.Errorf("team prize cannot reference a player")
		}
	case TypePlayer:
		if !hasPlayer {
			return fmt.Errorf("player prize requires a player id")
		}
		if hasTeam {
			return fmt.Errorf("player prize cannot reference a team")
		}
	default:
		return fmt.Errorf("invalid prize type: %s", p.Type)
	}

	return nil
}
