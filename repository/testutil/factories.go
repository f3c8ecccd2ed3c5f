package testutil

import (
	"context"
	"testing"

	"caketoss/database"

	"github.com/stretchr/testify/require"
)

// SeedGuild inserts a guild row with the given totals
func SeedGuild(t *testing.T, db *database.DB, guildID, name string, cakes, points int64) {
	_, err := db.Exec(context.Background(), `
		INSERT INTO guilds (guild_id, name, cakes, points)
		VALUES ($1, $2, $3, $4)
	`, guildID, name, cakes, points)
	require.NoError(t, err)
}

// SeedUser inserts a user row with the given totals
func SeedUser(t *testing.T, db *database.DB, userID string, cakes, points int64) {
	_, err := db.Exec(context.Background(), `
		INSERT INTO users (user_id, cakes, points)
		VALUES ($1, $2, $3)
	`, userID, cakes, points)
	require.NoError(t, err)
}

// SeedMember inserts a membership row. The user and guild rows must exist
// already; the members table enforces both foreign keys.
func SeedMember(t *testing.T, db *database.DB, userID, guildID string, cakes, points int64, cakesToday, cakesTodayReset *int64) {
	_, err := db.Exec(context.Background(), `
		INSERT INTO members (user_id, guild_id, cakes, points, cakes_today, cakes_today_reset)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, userID, guildID, cakes, points, cakesToday, cakesTodayReset)
	require.NoError(t, err)
}

// Int64 returns a pointer to the given value, for the nullable window columns
func Int64(v int64) *int64 {
	return &v
}
