package service

import (
	"context"

	"caketoss/events"
	"caketoss/models"
)

// GuildRepository defines the interface for guild data access
type GuildRepository interface {
	// EnsureExists inserts the guild with zeroed totals if absent
	EnsureExists(ctx context.Context, guildID, name string) error

	// Get retrieves a guild by its ID, returning nil when absent
	Get(ctx context.Context, guildID string) (*models.Guild, error)

	// AddThrow applies one successful throw to the guild totals and
	// refreshes the display name
	AddThrow(ctx context.Context, guildID, name string, points int64) error

	// Top returns guilds ordered descending by the sort key
	Top(ctx context.Context, sort models.SortKey, limit, offset int) ([]*models.Guild, error)

	// DecrementTotals removes a member's contribution from the guild totals
	DecrementTotals(ctx context.Context, guildID string, cakes, points int64) error

	// PruneEmpty deletes guilds whose cake count is zero
	PruneEmpty(ctx context.Context) (int64, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// EnsureExists inserts the user with zeroed totals if absent
	EnsureExists(ctx context.Context, userID string) error

	// Get retrieves a user by their ID, returning nil when absent
	Get(ctx context.Context, userID string) (*models.User, error)

	// AddThrow applies one successful throw to the user's global totals
	AddThrow(ctx context.Context, userID string, points int64) error

	// Top returns users ordered descending by the sort key
	Top(ctx context.Context, sort models.SortKey, limit, offset int) ([]*models.User, error)

	// Delete removes the user row
	Delete(ctx context.Context, userID string) error
}

// MemberRepository defines the interface for membership data access
type MemberRepository interface {
	// EnsureExists inserts the membership row if absent
	EnsureExists(ctx context.Context, userID, guildID string) error

	// Get retrieves one membership row, returning nil when absent
	Get(ctx context.Context, userID, guildID string) (*models.Member, error)

	// GetFirstByUser retrieves one of the user's membership rows in
	// storage order, returning nil when the user has none
	GetFirstByUser(ctx context.Context, userID string) (*models.Member, error)

	// ResetWindow starts a fresh daily window at the given unix time
	ResetWindow(ctx context.Context, userID, guildID string, resetAt int64) error

	// AddThrow applies one successful throw to the membership totals and
	// the current daily window
	AddThrow(ctx context.Context, userID, guildID string, points int64) error

	// TopByGuild returns a guild's members ordered descending by the sort key
	TopByGuild(ctx context.Context, guildID string, sort models.SortKey, limit, offset int) ([]*models.Member, error)

	// ListByUser returns every membership row belonging to the user
	ListByUser(ctx context.Context, userID string) ([]*models.Member, error)

	// DeleteByUser removes all of the user's membership rows
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

// EventPublisher publishes events that are held until the surrounding
// transaction commits
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork represents one atomic transaction over the cake tables
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	GuildRepository() GuildRepository
	UserRepository() UserRepository
	MemberRepository() MemberRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory creates units of work
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// CakeService defines the interface for the cake throw write path
type CakeService interface {
	// ThrowCake atomically records one throw against the guild, user and
	// membership aggregates, subject to the member's daily limit
	ThrowCake(ctx context.Context, userID, guildID, guildName string, points, dailyLimit int64) (*models.ThrowResult, error)
}

// LeaderboardService defines the interface for leaderboard queries
type LeaderboardService interface {
	// TopEntries returns one leaderboard page, ordered descending by the
	// sort key. Member leaderboards require a guild ID.
	TopEntries(ctx context.Context, kind models.LeaderboardKind, sort models.SortKey, limit, page int, guildID string) ([]*models.LeaderboardEntry, error)

	// GetEntry retrieves a single entry by ID, returning nil when absent
	GetEntry(ctx context.Context, kind models.LeaderboardKind, id string) (*models.LeaderboardEntry, error)
}

// PrivacyService defines the interface for user data deletion
type PrivacyService interface {
	// DeleteUserData removes all trace of a user and keeps guild
	// aggregates consistent
	DeleteUserData(ctx context.Context, userID string) (*models.DeleteResult, error)
}
