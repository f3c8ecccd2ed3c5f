package models

// Guild represents a Discord guild with its accumulated cake totals
type Guild struct {
	GuildID string `db:"guild_id"`
	Name    string `db:"name"`
	Cakes   int64  `db:"cakes"`
	Points  int64  `db:"points"`
}
