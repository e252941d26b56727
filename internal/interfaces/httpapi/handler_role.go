package httpapi

import (
	"net/http"
	"strings"

	"github.com/clubdeskhq/clubdesk/internal/domain/role"
	"github.com/clubdeskhq/clubdesk/internal/usecase"
)

type roleUpdateRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Permissions []string `json:"permissions" validate:"max=50,dive,required,max=100"`
}

type assignRolesRequest struct {
	PlayerID string   `json:"playerId" validate:"required"`
	RoleIDs  []string `json:"roleIds" validate:"max=20,dive,required"`
}

type roleDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

func (h *Handler) ListRoles(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRoles")
	defer span.End()

	roles, err := h.roleService.ListRoles(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list roles failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rolesToDTO(roles))
}

func (h *Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateRole")
	defer span.End()

	roleID := strings.TrimSpace(r.PathValue("roleID"))
	var req roleUpdateRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if !h.validateRequest(ctx, w, req) {
		return
	}

	updated, err := h.roleService.UpdateRole(ctx, usecase.UpdateRoleInput{
		RoleID:      roleID,
		Name:        req.Name,
		Permissions: req.Permissions,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update role failed", "role_id", roleID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, roleToDTO(updated))
}

func (h *Handler) AssignPlayerRoles(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AssignPlayerRoles")
	defer span.End()

	var req assignRolesRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if !h.validateRequest(ctx, w, req) {
		return
	}

	err := h.roleService.AssignPlayerRoles(ctx, usecase.AssignPlayerRolesInput{
		PlayerID: req.PlayerID,
		RoleIDs:  req.RoleIDs,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "assign player roles failed", "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, nil)
}

func (h *Handler) ListPlayerRoles(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerRoles")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	roles, err := h.roleService.ListPlayerRoles(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list player roles failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rolesToDTO(roles))
}

func roleToDTO(item role.Role) roleDTO {
	permissions := item.Permissions
	if permissions == nil {
		permissions = []string{}
	}

	return roleDTO{
		ID:          item.ID,
		Name:        item.Name,
		Permissions: permissions,
	}
}

func rolesToDTO(roles []role.Role) []roleDTO {
	items := make([]roleDTO, 0, len(roles))
	for _, item := range roles {
		items = append(items, roleToDTO(item))
	}
	return items
}
