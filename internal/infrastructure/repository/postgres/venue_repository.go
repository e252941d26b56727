package postgres

import (
	"context"
	"fmt"

	"github.com/clubdeskhq/clubdesk/internal/domain/venue"
	qb "github.com/clubdeskhq/clubdesk/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type VenueRepository struct {
	db *sqlx.DB
}

func NewVenueRepository(db *sqlx.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) List(ctx context.Context) ([]venue.Venue, error) {
	query, args, err := qb.Select("*").From("venues").
		Where(qb.IsNull("deleted_at")).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select venues query: %w", err)
	}

	var rows []venueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select venues: %w", err)
	}

	out := make([]venue.Venue, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapVenueRow(row))
	}

	return out, nil
}

func (r *VenueRepository) GetByID(ctx context.Context, venueID string) (venue.Venue, bool, error) {
	query, args, err := qb.Select("*").From("venues").
		Where(
			qb.Eq("public_id", venueID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return venue.Venue{}, false, fmt.Errorf("build get venue by id query: %w", err)
	}

	var row venueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return venue.Venue{}, false, nil
		}
		return venue.Venue{}, false, fmt.Errorf("get venue by id: %w", err)
	}

	return mapVenueRow(row), true, nil
}

func (r *VenueRepository) Create(ctx context.Context, item venue.Venue) error {
	query, args, err := qb.InsertModel("venues", venueInsertModel{
		PublicID: item.ID,
		Name:     item.Name,
		Address:  item.Address,
		Active:   item.Active,
	}, "")
	if err != nil {
		return fmt.Errorf("build create venue query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create venue: %w", err)
	}

	return nil
}

func (r *VenueRepository) Update(ctx context.Context, item venue.Venue) error {
	query, args, err := qb.Update("venues").
		Set("name", item.Name).
		Set("address", item.Address).
		Set("active", item.Active).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", item.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update venue query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update venue: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected update venue: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update venue: not found")
	}

	return nil
}

func mapVenueRow(row venueTableModel) venue.Venue {
	return venue.Venue{
		ID:        row.PublicID,
		Name:      row.Name,
		Address:   row.Address,
		Active:    row.Active,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
