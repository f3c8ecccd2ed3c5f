package models

// User represents a Discord user with cake totals aggregated across all
// guilds they have thrown in
type User struct {
	UserID string `db:"user_id"`
	Cakes  int64  `db:"cakes"`
	Points int64  `db:"points"`
}
