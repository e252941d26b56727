package postgres

import (
	"context"
	"fmt"

	"github.com/clubdeskhq/clubdesk/internal/domain/clubrule"
	qb "github.com/clubdeskhq/clubdesk/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type ClubRuleRepository struct {
	db *sqlx.DB
}

func NewClubRuleRepository(db *sqlx.DB) *ClubRuleRepository {
	return &ClubRuleRepository{db: db}
}

func (r *ClubRuleRepository) List(ctx context.Context) ([]clubrule.ClubRule, error) {
	query, args, err := qb.Select("*").From("club_rules").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select club rules query: %w", err)
	}

	var rows []clubRuleTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select club rules: %w", err)
	}

	out := make([]clubrule.ClubRule, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapClubRuleRow(row))
	}

	return out, nil
}

func (r *ClubRuleRepository) GetByID(ctx context.Context, ruleID string) (clubrule.ClubRule, bool, error) {
	query, args, err := qb.Select("*").From("club_rules").
		Where(
			qb.Eq("public_id", ruleID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return clubrule.ClubRule{}, false, fmt.Errorf("build get club rule by id query: %w", err)
	}

	var row clubRuleTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return clubrule.ClubRule{}, false, nil
		}
		return clubrule.ClubRule{}, false, fmt.Errorf("get club rule by id: %w", err)
	}

	return mapClubRuleRow(row), true, nil
}

func (r *ClubRuleRepository) Create(ctx context.Context, item clubrule.ClubRule) error {
	query, args, err := qb.InsertModel("club_rules", clubRuleInsertModel{
		PublicID:    item.ID,
		Description: item.Description,
	}, "")
	if err != nil {
		return fmt.Errorf("build create club rule query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create club rule: %w", err)
	}

	return nil
}

func (r *ClubRuleRepository) Update(ctx context.Context, item clubrule.ClubRule) error {
	query, args, err := qb.Update("club_rules").
		Set("description", item.Description).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", item.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update club rule query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update club rule: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected update club rule: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update club rule: not found")
	}

	return nil
}

func mapClubRuleRow(row clubRuleTableModel) clubrule.ClubRule {
	return clubrule.ClubRule{
		ID:          row.PublicID,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
