package service

import (
	"context"
	"testing"

	"caketoss/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardService_TopEntries_InvalidArguments(t *testing.T) {
	uow := NewMockUnitOfWork()
	svc := NewLeaderboardService(&MockUnitOfWorkFactory{UOW: uow})
	ctx := context.Background()

	tests := []struct {
		name    string
		kind    models.LeaderboardKind
		sort    models.SortKey
		limit   int
		page    int
		guildID string
	}{
		{"unknown kind", "banana", models.SortByPoints, 10, 1, ""},
		{"unknown sort key", models.KindUsers, "height", 10, 1, ""},
		{"zero limit", models.KindUsers, models.SortByPoints, 0, 1, ""},
		{"negative limit", models.KindUsers, models.SortByPoints, -5, 1, ""},
		{"zero page", models.KindUsers, models.SortByPoints, 10, 0, ""},
		{"members without guild", models.KindMembers, models.SortByPoints, 10, 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := svc.TopEntries(ctx, tt.kind, tt.sort, tt.limit, tt.page, tt.guildID)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Nil(t, entries)
		})
	}

	uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestLeaderboardService_TopEntries_Guilds(t *testing.T) {
	uow := NewMockUnitOfWork()
	svc := NewLeaderboardService(&MockUnitOfWorkFactory{UOW: uow})
	ctx := context.Background()

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback").Return(nil)

	// Page 3 with limit 10 skips the first 20 rows
	uow.Guilds.On("Top", ctx, models.SortByPoints, 10, 20).Return([]*models.Guild{
		{GuildID: "g1", Name: "Guild One", Cakes: 4, Points: 20},
		{GuildID: "g2", Name: "Guild Two", Cakes: 9, Points: 15},
	}, nil)

	entries, err := svc.TopEntries(ctx, models.KindGuilds, models.SortByPoints, 10, 3, "")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "g1", entries[0].ID)
	assert.Equal(t, "g1", entries[0].GuildID)
	assert.Equal(t, "Guild One", entries[0].Name)
	assert.Equal(t, int64(4), entries[0].Cakes)
	assert.Equal(t, int64(20), entries[0].Points)

	uow.Guilds.AssertExpectations(t)
}

func TestLeaderboardService_TopEntries_Users(t *testing.T) {
	uow := NewMockUnitOfWork()
	svc := NewLeaderboardService(&MockUnitOfWorkFactory{UOW: uow})
	ctx := context.Background()

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback").Return(nil)

	uow.Users.On("Top", ctx, models.SortByCakes, 5, 0).Return([]*models.User{
		{UserID: "u1", Cakes: 8, Points: 3},
	}, nil)

	entries, err := svc.TopEntries(ctx, models.KindUsers, models.SortByCakes, 5, 1, "")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "u1", entries[0].ID)
	assert.Empty(t, entries[0].GuildID)
	assert.Equal(t, int64(8), entries[0].Cakes)
	assert.Equal(t, int64(3), entries[0].Points)
}

func TestLeaderboardService_TopEntries_Members(t *testing.T) {
	uow := NewMockUnitOfWork()
	svc := NewLeaderboardService(&MockUnitOfWorkFactory{UOW: uow})
	ctx := context.Background()

	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback").Return(nil)

	uow.Members.On("TopByGuild", ctx, "g1", models.SortByPoints, 10, 0).Return([]*models.Member{
		{UserID: "u1", GuildID: "g1", Cakes: 2, Points: 7},
	}, nil)

	entries, err := svc.TopEntries(ctx, models.KindMembers, models.SortByPoints, 10, 1, "g1")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "u1", entries[0].ID)
	assert.Equal(t, "g1", entries[0].GuildID)
	assert.Equal(t, int64(2), entries[0].Cakes)
	assert.Equal(t, int64(7), entries[0].Points)
}

func TestLeaderboardService_GetEntry(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid arguments", func(t *testing.T) {
		uow := NewMockUnitOfWork()
		svc := NewLeaderboardService(&MockUnitOfWorkFactory{UOW: uow})

		_, err := svc.GetEntry(ctx, "banana", "u1")
		assert.ErrorIs(t, err, ErrInvalidArgument)

		_, err = svc.GetEntry(ctx, models.KindUsers, "")
		assert.ErrorIs(t, err, ErrInvalidArgument)

		uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("guild entry", func(t *testing.T) {
		uow := NewMockUnitOfWork()
		svc := NewLeaderboardService(&MockUnitOfWorkFactory{UOW: uow})

		uow.On("Begin", ctx).Return(nil)
		uow.On("Rollback").Return(nil)
		uow.Guilds.On("Get", ctx, "g1").Return(&models.Guild{
			GuildID: "g1", Name: "Guild", Cakes: 3, Points: 12,
		}, nil)

		entry, err := svc.GetEntry(ctx, models.KindGuilds, "g1")
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, "Guild", entry.Name)
		assert.Equal(t, int64(12), entry.Points)
	})

	t.Run("user entry not found", func(t *testing.T) {
		uow := NewMockUnitOfWork()
		svc := NewLeaderboardService(&MockUnitOfWorkFactory{UOW: uow})

		uow.On("Begin", ctx).Return(nil)
		uow.On("Rollback").Return(nil)
		uow.Users.On("Get", ctx, "missing").Return(nil, nil)

		entry, err := svc.GetEntry(ctx, models.KindUsers, "missing")
		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("member entry uses the first membership", func(t *testing.T) {
		uow := NewMockUnitOfWork()
		svc := NewLeaderboardService(&MockUnitOfWorkFactory{UOW: uow})

		uow.On("Begin", ctx).Return(nil)
		uow.On("Rollback").Return(nil)
		uow.Members.On("GetFirstByUser", ctx, "u1").Return(&models.Member{
			UserID: "u1", GuildID: "g1", Cakes: 1, Points: 5,
		}, nil)

		entry, err := svc.GetEntry(ctx, models.KindMembers, "u1")
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, "u1", entry.ID)
		assert.Equal(t, "g1", entry.GuildID)
	})
}
