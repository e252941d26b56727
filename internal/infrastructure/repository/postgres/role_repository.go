package postgres

import (
	"context"
	"fmt"

	"github.com/clubdeskhq/clubdesk/internal/domain/role"
	qb "github.com/clubdeskhq/clubdesk/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type RoleRepository struct {
	db *sqlx.DB
}

func NewRoleRepository(db *sqlx.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) List(ctx context.Context) ([]role.Role, error) {
	query, args, err := qb.Select("*").From("roles").
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select roles query: %w", err)
	}

	var rows []roleTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select roles: %w", err)
	}

	out := make([]role.Role, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapRoleRow(row))
	}

	return out, nil
}

func (r *RoleRepository) GetByID(ctx context.Context, roleID string) (role.Role, bool, error) {
	query, args, err := qb.Select("*").From("roles").
		Where(qb.Eq("public_id", roleID)).
		ToSQL()
	if err != nil {
		return role.Role{}, false, fmt.Errorf("build get role by id query: %w", err)
	}

	var row roleTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return role.Role{}, false, nil
		}
		return role.Role{}, false, fmt.Errorf("get role by id: %w", err)
	}

	return mapRoleRow(row), true, nil
}

func (r *RoleRepository) Update(ctx context.Context, item role.Role) error {
	query, args, err := qb.Update("roles").
		Set("name", item.Name).
		Set("permissions", pq.StringArray(item.Permissions)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update role query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected update role: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update role: not found")
	}

	return nil
}

// Assign replaces the player's role set in one transaction.
func (r *RoleRepository) Assign(ctx context.Context, assignment role.Assignment) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx assign roles: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery, deleteArgs, err := qb.Update("player_roles").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("player_public_id", assignment.PlayerID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear player roles query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("clear player roles: %w", err)
	}

	for _, roleID := range assignment.RoleIDs {
		insertQuery, insertArgs, err := qb.InsertModel("player_roles", playerRoleInsertModel{
			PlayerID: assignment.PlayerID,
			RoleID:   roleID,
		}, "")
		if err != nil {
			return fmt.Errorf("build assign role query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("assign role %s: %w", roleID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit assign roles: %w", err)
	}

	return nil
}

func (r *RoleRepository) ListByPlayer(ctx context.Context, playerID string) ([]role.Role, error) {
	query, args, err := qb.Select("r.*").From("roles r").
		Where(
			qb.Expr("r.public_id IN (SELECT pr.role_public_id FROM player_roles pr WHERE pr.player_public_id = ? AND pr.deleted_at IS NULL)", playerID),
		).
		OrderBy("r.name", "r.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player roles query: %w", err)
	}

	var rows []roleTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player roles: %w", err)
	}

	out := make([]role.Role, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapRoleRow(row))
	}

	return out, nil
}

func mapRoleRow(row roleTableModel) role.Role {
	return role.Role{
		ID:          row.PublicID,
		Name:        row.Name,
		Permissions: []string(row.Permissions),
	}
}
