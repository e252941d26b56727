package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type prizeTableModel struct {
	ID           int64          `db:"id"`
	PublicID     string         `db:"public_id"`
	TournamentID string         `db:"tournament_public_id"`
	PrizeType    string         `db:"prize_type"`
	TeamID       sql.NullString `db:"team_id"`
	TeamName     sql.NullString `db:"team_name"`
	PlayerID     sql.NullString `db:"player_id"`
	PlayerName   sql.NullString `db:"player_name"`
	EmployeeID   sql.NullString `db:"employee_id"`
	PositionRank int            `db:"position_rank"`
	Amount       float64        `db:"amount"`
	Category     string         `db:"category"`
	Description  sql.NullString `db:"description"`
	ImageLinks   pq.StringArray `db:"image_links"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	DeletedAt    *time.Time     `db:"deleted_at"`
}

type prizeInsertModel struct {
	PublicID     string         `db:"public_id"`
	TournamentID string         `db:"tournament_public_id"`
	PrizeType    string         `db:"prize_type"`
	TeamID       sql.NullString `db:"team_id"`
	TeamName     sql.NullString `db:"team_name"`
	PlayerID     sql.NullString `db:"player_id"`
	PlayerName   sql.NullString `db:"player_name"`
	EmployeeID   sql.NullString `db:"employee_id"`
	PositionRank int            `db:"position_rank"`
	Amount       float64        `db:"amount"`
	Category     string         `db:"category"`
	Description  sql.NullString `db:"description"`
	ImageLinks   pq.StringArray `db:"image_links"`
}

func nullString(value string) sql.NullString {
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}
