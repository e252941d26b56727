package clubrule

import "context"

// Repository describes club rule persistence needs from use cases.
// Rules are never deleted, only rewritten.
type Repository interface {
	List(ctx context.Context) ([]ClubRule, error)
	GetByID(ctx context.Context, ruleID string) (ClubRule, bool, error)
	Create(ctx context.Context, item ClubRule) error
	Update(ctx context.Context, item ClubRule) error
}
