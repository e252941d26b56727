package postgres

import "time"

type venueTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	Name      string     `db:"name"`
	Address   string     `db:"address"`
	Active    bool       `db:"active"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type venueInsertModel struct {
	PublicID string `db:"public_id"`
	Name     string `db:"name"`
	Address  string `db:"address"`
	Active   bool   `db:"active"`
}
