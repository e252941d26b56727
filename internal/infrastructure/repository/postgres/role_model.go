package postgres

import (
	"time"

	"github.com/lib/pq"
)

type roleTableModel struct {
	ID          int64          `db:"id"`
	PublicID    string         `db:"public_id"`
	Name        string         `db:"name"`
	Permissions pq.StringArray `db:"permissions"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type playerRoleInsertModel struct {
	PlayerID string `db:"player_public_id"`
	RoleID   string `db:"role_public_id"`
}
