package postgres

import "time"

type clubRuleTableModel struct {
	ID          int64      `db:"id"`
	PublicID    string     `db:"public_id"`
	Description string     `db:"description"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

type clubRuleInsertModel struct {
	PublicID    string `db:"public_id"`
	Description string `db:"description"`
}
