package prize

import "context"

// ListFilter narrows a tournament's prize listing. Zero values mean no
// restriction.
type ListFilter struct {
	Type     Type
	TeamID   string
	PlayerID string
}

// Repository describes prize persistence needs from use cases.
type Repository interface {
	ListByTournament(ctx context.Context, tournamentID string, filter ListFilter) ([]Prize, error)
	GetByID(ctx context.Context, tournamentID, prizeID string) (Prize, bool, error)
	Create(ctx context.Context, item Prize) error
	Update(ctx context.Context, item Prize) error
	Delete(ctx context.Context, tournamentID, prizeID string) error
}
