package clubrule

import (
	"fmt"
	"strings"
	"time"
)

// ClubRule is one line of the club's house rules.
type ClubRule struct {
	ID          string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r ClubRule) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("club rule id is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return fmt.Errorf("club rule description is required")
	}

	return nil
}
