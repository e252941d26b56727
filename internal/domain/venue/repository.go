package venue

import "context"

// Repository describes venue persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Venue, error)
	GetByID(ctx context.Context, venueID string) (Venue, bool, error)
	Create(ctx context.Context, item Venue) error
	Update(ctx context.Context, item Venue) error
}
