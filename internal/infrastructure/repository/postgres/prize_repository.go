package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/clubdeskhq/clubdesk/internal/domain/prize"
	qb "github.com/clubdeskhq/clubdesk/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type PrizeRepository struct {
	db *sqlx.DB
}

func NewPrizeRepository(db *sqlx.DB) *PrizeRepository {
	return &PrizeRepository{db: db}
}

func (r *PrizeRepository) ListByTournament(ctx context.Context, tournamentID string, filter prize.ListFilter) ([]prize.Prize, error) {
	conditions := []qb.Condition{
		qb.Eq("tournament_public_id", tournamentID),
		qb.IsNull("deleted_at"),
	}
	if filter.Type != "" {
		conditions = append(conditions, qb.Eq("prize_type", string(filter.Type)))
	}
	if strings.TrimSpace(filter.TeamID) != "" {
		conditions = append(conditions, qb.Eq("team_id", filter.TeamID))
	}
	if strings.TrimSpace(filter.PlayerID) != "" {
		conditions = append(conditions, qb.Eq("player_id", filter.PlayerID))
	}

	query, args, err := qb.Select("*").From("tournament_prizes").
		Where(conditions...).
		OrderBy("position_rank", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select tournament prizes query: %w", err)
	}

	var rows []prizeTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select tournament prizes: %w", err)
	}

	out := make([]prize.Prize, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapPrizeRow(row))
	}

	return out, nil
}

func (r *PrizeRepository) GetByID(ctx context.Context, tournamentID, prizeID string) (prize.Prize, bool, error) {
	query, args, err := qb.Select("*").From("tournament_prizes").
		Where(
			qb.Eq("tournament_public_id", tournamentID),
			qb.Eq("public_id", prizeID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return prize.Prize{}, false, fmt.Errorf("build get prize by id query: %w", err)
	}

	var row prizeTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return prize.Prize{}, false, nil
		}
		return prize.Prize{}, false, fmt.Errorf("get prize by id: %w", err)
	}

	return mapPrizeRow(row), true, nil
}

func (r *PrizeRepository) Create(ctx context.Context, item prize.Prize) error {
	query, args, err := qb.InsertModel("tournament_prizes", prizeInsertModel{
		PublicID:     item.ID,
		TournamentID: item.TournamentID,
		PrizeType:    string(item.Type),
		TeamID:       nullString(item.TeamID),
		TeamName:     nullString(item.TeamName),
		PlayerID:     nullString(item.PlayerID),
		PlayerName:   nullString(item.PlayerName),
		EmployeeID:   nullString(item.EmployeeID),
		PositionRank: item.PositionRank,
		Amount:       item.Amount,
		Category:     string(item.Category),
		Description:  nullString(item.Description),
		ImageLinks:   pq.StringArray(item.ImageLinks),
	}, "")
	if err != nil {
		return fmt.Errorf("build create prize query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create prize: %w", err)
	}

	return nil
}

func (r *PrizeRepository) Update(ctx context.Context, item prize.Prize) error {
	query, args, err := qb.Update("tournament_prizes").
		Set("prize_type", string(item.Type)).
		Set("team_id", nullString(item.TeamID)).
		Set("team_name", nullString(item.TeamName)).
		Set("player_id", nullString(item.PlayerID)).
		Set("player_name", nullString(item.PlayerName)).
		Set("employee_id", nullString(item.EmployeeID)).
		Set("position_rank", item.PositionRank).
		Set("amount", item.Amount).
		Set("category", string(item.Category)).
		Set("description", nullString(item.Description)).
		Set("image_links", pq.StringArray(item.ImageLinks)).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("tournament_public_id", item.TournamentID),
			qb.Eq("public_id", item.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update prize query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update prize: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected update prize: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update prize: not found")
	}

	return nil
}

func (r *PrizeRepository) Delete(ctx context.Context, tournamentID, prizeID string) error {
	query, args, err := qb.Update("tournament_prizes").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("tournament_public_id", tournamentID),
			qb.Eq("public_id", prizeID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete prize query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete prize: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected delete prize: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete prize: not found")
	}

	return nil
}

func mapPrizeRow(row prizeTableModel) prize.Prize {
	return prize.Prize{
		ID:           row.PublicID,
		TournamentID: row.TournamentID,
		Type:         prize.Type(row.PrizeType),
		TeamID:       row.TeamID.String,
		TeamName:     row.TeamName.String,
		PlayerID:     row.PlayerID.String,
		PlayerName:   row.PlayerName.String,
		EmployeeID:   row.EmployeeID.String,
		PositionRank: row.PositionRank,
		Amount:       row.Amount,
		Category:     prize.Category(row.Category),
		Description:  row.Description.String,
		ImageLinks:   []string(row.ImageLinks),
	}
}
