package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/clubdeskhq/clubdesk/internal/domain/role"
)

type RoleRepository struct {
	mu          sync.RWMutex
	items       map[string]role.Role
	orders      []string
	assignments map[string][]string
}

func NewRoleRepository(roles []role.Role) *RoleRepository {
	items := make(map[string]role.Role, len(roles))
	orders := make([]string, 0, len(roles))

	for _, item := range roles {
		items[item.ID] = item
		orders = append(orders, item.ID)
	}

	return &RoleRepository{
		items:       items,
		orders:      orders,
		assignments: make(map[string][]string),
	}
}

func (r *RoleRepository) List(_ context.Context) ([]role.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]role.Role, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *RoleRepository) GetByID(_ context.Context, roleID string) (role.Role, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[roleID]
	if !ok {
		return role.Role{}, false, nil
	}

	return item, true, nil
}

func (r *RoleRepository) Update(_ context.Context, item role.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return fmt.Errorf("update role: not found")
	}

	r.items[item.ID] = item

	return nil
}

func (r *RoleRepository) Assign(_ context.Context, assignment role.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, roleID := range assignment.RoleIDs {
		if _, ok := r.items[roleID]; !ok {
			return fmt.Errorf("assign roles: unknown role %s", roleID)
		}
	}

	roleIDs := make([]string, len(assignment.RoleIDs))
	copy(roleIDs, assignment.RoleIDs)
	r.assignments[assignment.PlayerID] = roleIDs

	return nil
}

func (r *RoleRepository) ListByPlayer(_ context.Context, playerID string) ([]role.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roleIDs := r.assignments[playerID]
	out := make([]role.Role, 0, len(roleIDs))
	for _, roleID := range roleIDs {
		if item, ok := r.items[roleID]; ok {
			out = append(out, item)
		}
	}

	return out, nil
}
