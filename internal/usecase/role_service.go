package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/clubdeskhq/clubdesk/internal/domain/role"
)

type UpdateRoleInput struct {
	RoleID      string
	Name        string
	Permissions []string
}

type AssignPlayerRolesInput struct {
	PlayerID string
	RoleIDs  []string
}

type RoleService struct {
	roleRepo role.Repository
}

func NewRoleService(roleRepo role.Repository) *RoleService {
	return &RoleService{roleRepo: roleRepo}
}

func (s *RoleService) ListRoles(ctx context.Context) ([]role.Role, error) {
	roles, err := s.roleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}

	return roles, nil
}

func (s *RoleService) UpdateRole(ctx context.Context, input UpdateRoleInput) (role.Role, error) {
	input.RoleID = strings.TrimSpace(input.RoleID)
	if input.RoleID == "" {
		return role.Role{}, fmt.Errorf("%w: role id is required", ErrInvalidInput)
	}

	current, exists, err := s.roleRepo.GetByID(ctx, input.RoleID)
	if err != nil {
		return role.Role{}, fmt.Errorf("get role for update: %w", err)
	}
	if !exists {
		return role.Role{}, fmt.Errorf("%w: role=%s", ErrNotFound, input.RoleID)
	}

	permissions := make([]string, 0, len(input.Permissions))
	for _, permission := range input.Permissions {
		permission = strings.TrimSpace(permission)
		if permission == "" {
			continue
		}
		permissions = append(permissions, permission)
	}

	item := current
	item.Name = strings.TrimSpace(input.Name)
	item.Permissions = permissions
	if err := item.Validate(); err != nil {
		return role.Role{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.roleRepo.Update(ctx, item); err != nil {
		return role.Role{}, fmt.Errorf("update role: %w", err)
	}

	return item, nil
}

func (s *RoleService) AssignPlayerRoles(ctx context.Context, input AssignPlayerRolesInput) error {
	assignment := role.Assignment{
		PlayerID: strings.TrimSpace(input.PlayerID),
		RoleIDs:  normalizeRoleIDs(input.RoleIDs),
	}
	if err := assignment.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	for _, roleID := range assignment.RoleIDs {
		_, exists, err := s.roleRepo.GetByID(ctx, roleID)
		if err != nil {
			return fmt.Errorf("get role for assignment: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: role=%s", ErrNotFound, roleID)
		}
	}

	if err := s.roleRepo.Assign(ctx, assignment); err != nil {
		return fmt.Errorf("assign player roles: %w", err)
	}

	return nil
}

func (s *RoleService) ListPlayerRoles(ctx context.Context, playerID string) ([]role.Role, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	roles, err := s.roleRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list player roles: %w", err)
	}

	return roles, nil
}

func normalizeRoleIDs(roleIDs []string) []string {
	seen := make(map[string]struct{}, len(roleIDs))
	out := make([]string, 0, len(roleIDs))
	for _, roleID := range roleIDs {
		roleID = strings.TrimSpace(roleID)
		if roleID == "" {
			continue
		}
		if _, ok := seen[roleID]; ok {
			continue
		}
		seen[roleID] = struct{}{}
		out = append(out, roleID)
	}
	return out
}
