package venue

import (
	"fmt"
	"strings"
	"time"
)

// Venue is a playing ground the club can book for fixtures.
type Venue struct {
	ID        string
	Name      string
	Address   string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (v Venue) Validate() error {
	if strings.TrimSpace(v.ID) == "" {
		return fmt.Errorf("venue id is required")
	}
	if strings.TrimSpace(v.Name) == "" {
		return fmt.Errorf("venue name is required")
	}
	if strings.TrimSpace(v.Address) == "" {
		return fmt.Errorf("venue address is required")
	}

	return nil
}
