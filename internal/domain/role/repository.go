package role

import "context"

// Repository describes role persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Role, error)
	GetByID(ctx context.Context, roleID string) (Role, bool, error)
	Update(ctx context.Context, item Role) error
	Assign(ctx context.Context, assignment Assignment) error
	ListByPlayer(ctx context.Context, playerID string) ([]Role, error)
}
