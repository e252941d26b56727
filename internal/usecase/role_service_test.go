package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/clubdeskhq/clubdesk/internal/infrastructure/repository/memory"
)

func TestRoleService_AssignAndListPlayerRoles(t *testing.T) {
	roleRepo := memory.NewRoleRepository(memory.SeedRoles())
	service := NewRoleService(roleRepo)

	err := service.AssignPlayerRoles(context.Background(), AssignPlayerRolesInput{
		PlayerID: "player-dimas",
		RoleIDs:  []string{"role-treasurer", " role-member ", "role-treasurer"},
	})
	if err != nil {
		t.Fatalf("assign player roles: %v", err)
	}

	roles, err := service.ListPlayerRoles(context.Background(), "player-dimas")
	if err != nil {
		t.Fatalf("list player roles: %v", err)
	}
	if len(roles) != 2 {
		t.Fatalf("expected 2 roles after dedupe, got %d", len(roles))
	}
}

func TestRoleService_AssignPlayerRoles_ReplacesPreviousSet(t *testing.T) {
	roleRepo := memory.NewRoleRepository(memory.SeedRoles())
	service := NewRoleService(roleRepo)

	ctx := context.Background()
	if err := service.AssignPlayerRoles(ctx, AssignPlayerRolesInput{
		PlayerID: "player-dimas",
		RoleIDs:  []string{"role-admin", "role-treasurer"},
	}); err != nil {
		t.Fatalf("first assignment: %v", err)
	}
	if err := service.AssignPlayerRoles(ctx, AssignPlayerRolesInput{
		PlayerID: "player-dimas",
		RoleIDs:  []string{"role-member"},
	}); err != nil {
		t.Fatalf("second assignment: %v", err)
	}

	roles, err := service.ListPlayerRoles(ctx, "player-dimas")
	if err != nil {
		t.Fatalf("list player roles: %v", err)
	}
	if len(roles) != 1 || roles[0].ID != "role-member" {
		t.Fatalf("expected assignment to replace previous set, got %v", roles)
	}
}

func TestRoleService_AssignPlayerRoles_UnknownRole(t *testing.T) {
	service := NewRoleService(memory.NewRoleRepository(memory.SeedRoles()))

	err := service.AssignPlayerRoles(context.Background(), AssignPlayerRolesInput{
		PlayerID: "player-dimas",
		RoleIDs:  []string{"role-ghost"},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRoleService_AssignPlayerRoles_RequiresPlayer(t *testing.T) {
	service := NewRoleService(memory.NewRoleRepository(memory.SeedRoles()))

	err := service.AssignPlayerRoles(context.Background(), AssignPlayerRolesInput{
		PlayerID: "   ",
		RoleIDs:  []string{"role-member"},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRoleService_UpdateRole(t *testing.T) {
	service := NewRoleService(memory.NewRoleRepository(memory.SeedRoles()))

	updated, err := service.UpdateRole(context.Background(), UpdateRoleInput{
		RoleID:      "role-member",
		Name:        "Member",
		Permissions: []string{"venues:read", " rules:read ", ""},
	})
	if err != nil {
		t.Fatalf("update role: %v", err)
	}
	if len(updated.Permissions) != 2 {
		t.Fatalf("expected blank permissions dropped, got %v", updated.Permissions)
	}

	roles, err := service.ListRoles(context.Background())
	if err != nil {
		t.Fatalf("list roles: %v", err)
	}
	for _, item := range roles {
		if item.ID == "role-member" && len(item.Permissions) != 2 {
			t.Fatalf("update not persisted: %v", item.Permissions)
		}
	}
}

func TestRoleService_UpdateRole_NotFound(t *testing.T) {
	service := NewRoleService(memory.NewRoleRepository(memory.SeedRoles()))

	_, err := service.UpdateRole(context.Background(), UpdateRoleInput{
		RoleID: "role-ghost",
		Name:   "Ghost",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
