package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/clubdeskhq/clubdesk/internal/domain/role"
	rolemock "github.com/clubdeskhq/clubdesk/internal/mocks/domain/role"
)

func TestRoleService_AssignPlayerRoles_UsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	roleRepo := rolemock.NewRepository(t)
	service := NewRoleService(roleRepo)

	roleRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "role-admin").
		Return(role.Role{ID: "role-admin", Name: "Administrator"}, true, nil).
		Once()
	roleRepo.
		On("Assign", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), mock.MatchedBy(func(assignment role.Assignment) bool {
			return assignment.PlayerID == "player-dimas" &&
				len(assignment.RoleIDs) == 1 &&
				assignment.RoleIDs[0] == "role-admin"
		})).
		Return(nil).
		Once()

	err := service.AssignPlayerRoles(ctx, AssignPlayerRolesInput{
		PlayerID: " player-dimas ",
		RoleIDs:  []string{"role-admin", " role-admin "},
	})
	if err != nil {
		t.Fatalf("assign player roles: %v", err)
	}
}

func TestRoleService_AssignPlayerRoles_RepositoryFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	roleRepo := rolemock.NewRepository(t)
	service := NewRoleService(roleRepo)

	repoErr := errors.New("connection reset")
	roleRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "role-admin").
		Return(role.Role{}, false, repoErr).
		Once()

	err := service.AssignPlayerRoles(ctx, AssignPlayerRolesInput{
		PlayerID: "player-dimas",
		RoleIDs:  []string{"role-admin"},
	})
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestRoleService_UpdateRole_RepositoryFailureUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	roleRepo := rolemock.NewRepository(t)
	service := NewRoleService(roleRepo)

	repoErr := errors.New("deadlock detected")
	roleRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "role-treasurer").
		Return(role.Role{ID: "role-treasurer", Name: "Treasurer"}, true, nil).
		Once()
	roleRepo.
		On("Update", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), mock.MatchedBy(func(item role.Role) bool {
			return item.ID == "role-treasurer" && item.Name == "Finance Lead"
		})).
		Return(repoErr).
		Once()

	_, err := service.UpdateRole(ctx, UpdateRoleInput{
		RoleID: "role-treasurer",
		Name:   "Finance Lead",
	})
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}
