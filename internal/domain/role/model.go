package role

import (
	"fmt"
	"strings"
)

// Role is a named permission set assignable to players.
type Role struct {
	ID          string
	Name        string
	Permissions []string
}

func (r Role) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("role id is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("role name is required")
	}

	return nil
}

// Assignment links a player to the roles they hold.
type Assignment struct {
	PlayerID string
	RoleIDs  []string
}

func (a Assignment) Validate() error {
	if strings.TrimSpace(a.PlayerID) == "" {
		return fmt.Errorf("assignment player id is required")
	}
	for _, roleID := range a.RoleIDs {
		if strings.TrimSpace(roleID) == "" {
			return fmt.Errorf("assignment role ids cannot be blank")
		}
	}

	return nil
}
