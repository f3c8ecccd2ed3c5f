package repository

import (
	"context"
	"fmt"
	"testing"

	"caketoss/models"
	"caketoss/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuildRepository_EnsureExists(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuildRepository(testDB.DB)
	ctx := context.Background()

	t.Run("creates guild with zero totals", func(t *testing.T) {
		err := repo.EnsureExists(ctx, "g1", "Guild One")
		require.NoError(t, err)

		guild, err := repo.Get(ctx, "g1")
		require.NoError(t, err)
		require.NotNil(t, guild)

		assert.Equal(t, "g1", guild.GuildID)
		assert.Equal(t, "Guild One", guild.Name)
		assert.Equal(t, int64(0), guild.Cakes)
		assert.Equal(t, int64(0), guild.Points)
	})

	t.Run("never overwrites an existing row", func(t *testing.T) {
		testutil.SeedGuild(t, testDB.DB, "g2", "Original", 7, 42)

		err := repo.EnsureExists(ctx, "g2", "Different Name")
		require.NoError(t, err)

		guild, err := repo.Get(ctx, "g2")
		require.NoError(t, err)
		require.NotNil(t, guild)

		assert.Equal(t, "Original", guild.Name)
		assert.Equal(t, int64(7), guild.Cakes)
		assert.Equal(t, int64(42), guild.Points)
	})
}

func TestGuildRepository_Get(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuildRepository(testDB.DB)
	ctx := context.Background()

	t.Run("guild not found", func(t *testing.T) {
		guild, err := repo.Get(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, guild)
	})
}

func TestGuildRepository_AddThrow(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuildRepository(testDB.DB)
	ctx := context.Background()

	t.Run("increments totals and refreshes name", func(t *testing.T) {
		testutil.SeedGuild(t, testDB.DB, "g1", "Old Name", 2, 10)

		err := repo.AddThrow(ctx, "g1", "New Name", 5)
		require.NoError(t, err)

		guild, err := repo.Get(ctx, "g1")
		require.NoError(t, err)
		require.NotNil(t, guild)

		assert.Equal(t, "New Name", guild.Name)
		assert.Equal(t, int64(3), guild.Cakes)
		assert.Equal(t, int64(15), guild.Points)
	})

	t.Run("negative points are applied", func(t *testing.T) {
		testutil.SeedGuild(t, testDB.DB, "g2", "Guild", 1, 5)

		err := repo.AddThrow(ctx, "g2", "Guild", -2)
		require.NoError(t, err)

		guild, err := repo.Get(ctx, "g2")
		require.NoError(t, err)
		assert.Equal(t, int64(2), guild.Cakes)
		assert.Equal(t, int64(3), guild.Points)
	})

	t.Run("guild not found", func(t *testing.T) {
		err := repo.AddThrow(ctx, "missing", "Nope", 1)
		assert.Error(t, err)
	})
}

func TestGuildRepository_Top(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuildRepository(testDB.DB)
	ctx := context.Background()

	// 15 guilds with distinct point totals 1..15
	for n := 1; n <= 15; n++ {
		testutil.SeedGuild(t, testDB.DB, fmt.Sprintf("g%02d", n), fmt.Sprintf("Guild %d", n), int64(16-n), int64(n))
	}

	t.Run("first page descending by points", func(t *testing.T) {
		guilds, err := repo.Top(ctx, models.SortByPoints, 10, 0)
		require.NoError(t, err)
		require.Len(t, guilds, 10)

		for n, guild := range guilds {
			assert.Equal(t, int64(15-n), guild.Points)
		}
	})

	t.Run("second page returns the remainder", func(t *testing.T) {
		guilds, err := repo.Top(ctx, models.SortByPoints, 10, 10)
		require.NoError(t, err)
		require.Len(t, guilds, 5)

		for n, guild := range guilds {
			assert.Equal(t, int64(5-n), guild.Points)
		}
	})

	t.Run("sort by cakes", func(t *testing.T) {
		guilds, err := repo.Top(ctx, models.SortByCakes, 3, 0)
		require.NoError(t, err)
		require.Len(t, guilds, 3)

		assert.Equal(t, int64(15), guilds[0].Cakes)
		assert.Equal(t, int64(14), guilds[1].Cakes)
		assert.Equal(t, int64(13), guilds[2].Cakes)
	})
}

func TestGuildRepository_DecrementTotals(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuildRepository(testDB.DB)
	ctx := context.Background()

	testutil.SeedGuild(t, testDB.DB, "g1", "Guild", 5, 20)

	err := repo.DecrementTotals(ctx, "g1", 2, 8)
	require.NoError(t, err)

	guild, err := repo.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), guild.Cakes)
	assert.Equal(t, int64(12), guild.Points)
}

func TestGuildRepository_PruneEmpty(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewGuildRepository(testDB.DB)
	ctx := context.Background()

	testutil.SeedGuild(t, testDB.DB, "empty", "Empty", 0, 0)
	testutil.SeedGuild(t, testDB.DB, "negative-points", "Odd", 3, -4)
	testutil.SeedGuild(t, testDB.DB, "busy", "Busy", 9, 33)

	pruned, err := repo.PruneEmpty(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pruned)

	guild, err := repo.Get(ctx, "empty")
	require.NoError(t, err)
	assert.Nil(t, guild)

	// A guild with cakes left is kept even when its points are negative
	guild, err = repo.Get(ctx, "negative-points")
	require.NoError(t, err)
	require.NotNil(t, guild)

	guild, err = repo.Get(ctx, "busy")
	require.NoError(t, err)
	require.NotNil(t, guild)
}
