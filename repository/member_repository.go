package repository

import (
	"context"
	"fmt"

	"caketoss/database"
	"caketoss/models"
	"github.com/jackc/pgx/v5"
)

// MemberRepository implements the MemberRepository interface
type MemberRepository struct {
	q queryable
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *database.DB) *MemberRepository {
	return &MemberRepository{q: db.Pool}
}

// newMemberRepositoryWithTx creates a new member repository with a transaction
func newMemberRepositoryWithTx(tx queryable) *MemberRepository {
	return &MemberRepository{q: tx}
}

// EnsureExists inserts the membership row with zeroed totals and no daily
// window if it is not already present
func (r *MemberRepository) EnsureExists(ctx context.Context, userID, guildID string) error {
	query := `
		INSERT INTO members (user_id, guild_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, guild_id) DO NOTHING
	`

	if _, err := r.q.Exec(ctx, query, userID, guildID); err != nil {
		return fmt.Errorf("failed to ensure member %s/%s exists: %w", userID, guildID, err)
	}

	return nil
}

// Get retrieves one membership row, returning nil when no row matches
func (r *MemberRepository) Get(ctx context.Context, userID, guildID string) (*models.Member, error) {
	query := `
		SELECT user_id, guild_id, cakes, points, cakes_today, cakes_today_reset
		FROM members
		WHERE user_id = $1 AND guild_id = $2
	`

	var member models.Member
	err := r.q.QueryRow(ctx, query, userID, guildID).Scan(
		&member.UserID,
		&member.GuildID,
		&member.Cakes,
		&member.Points,
		&member.CakesToday,
		&member.CakesTodayReset,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member %s/%s: %w", userID, guildID, err)
	}

	return &member, nil
}

// GetFirstByUser retrieves a single membership row for the user in storage
// order, returning nil when the user has none
func (r *MemberRepository) GetFirstByUser(ctx context.Context, userID string) (*models.Member, error) {
	query := `
		SELECT user_id, guild_id, cakes, points, cakes_today, cakes_today_reset
		FROM members
		WHERE user_id = $1
		LIMIT 1
	`

	var member models.Member
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&member.UserID,
		&member.GuildID,
		&member.Cakes,
		&member.Points,
		&member.CakesToday,
		&member.CakesTodayReset,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member for user %s: %w", userID, err)
	}

	return &member, nil
}

// ResetWindow starts a fresh daily window at the given unix time
func (r *MemberRepository) ResetWindow(ctx context.Context, userID, guildID string, resetAt int64) error {
	query := `
		UPDATE members
		SET cakes_today = 0, cakes_today_reset = $1
		WHERE user_id = $2 AND guild_id = $3
	`

	result, err := r.q.Exec(ctx, query, resetAt, userID, guildID)
	if err != nil {
		return fmt.Errorf("failed to reset window for member %s/%s: %w", userID, guildID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("member %s/%s not found", userID, guildID)
	}

	return nil
}

// AddThrow applies one successful throw to the membership totals and the
// current daily window. The window must have been initialized with
// ResetWindow first; incrementing a NULL cakes_today stays NULL.
func (r *MemberRepository) AddThrow(ctx context.Context, userID, guildID string, points int64) error {
	query := `
		UPDATE members
		SET points = points + $1, cakes = cakes + 1, cakes_today = cakes_today + 1
		WHERE user_id = $2 AND guild_id = $3
	`

	result, err := r.q.Exec(ctx, query, points, userID, guildID)
	if err != nil {
		return fmt.Errorf("failed to add throw to member %s/%s: %w", userID, guildID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("member %s/%s not found", userID, guildID)
	}

	return nil
}

// TopByGuild returns a guild's members ordered descending by the sort key
func (r *MemberRepository) TopByGuild(ctx context.Context, guildID string, sort models.SortKey, limit, offset int) ([]*models.Member, error) {
	var query string
	switch sort {
	case models.SortByCakes:
		query = `
			SELECT user_id, guild_id, cakes, points, cakes_today, cakes_today_reset
			FROM members
			WHERE guild_id = $1
			ORDER BY cakes DESC
			LIMIT $2 OFFSET $3
		`
	case models.SortByPoints:
		query = `
			SELECT user_id, guild_id, cakes, points, cakes_today, cakes_today_reset
			FROM members
			WHERE guild_id = $1
			ORDER BY points DESC
			LIMIT $2 OFFSET $3
		`
	default:
		return nil, fmt.Errorf("unknown sort key: %s", sort)
	}

	rows, err := r.q.Query(ctx, query, guildID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get top members for guild %s: %w", guildID, err)
	}
	defer rows.Close()

	return scanMembers(rows)
}

// ListByUser returns every membership row belonging to the user
func (r *MemberRepository) ListByUser(ctx context.Context, userID string) ([]*models.Member, error) {
	query := `
		SELECT user_id, guild_id, cakes, points, cakes_today, cakes_today_reset
		FROM members
		WHERE user_id = $1
	`

	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members for user %s: %w", userID, err)
	}
	defer rows.Close()

	return scanMembers(rows)
}

// DeleteByUser removes all of the user's membership rows and returns how
// many were deleted
func (r *MemberRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	query := `
		DELETE FROM members
		WHERE user_id = $1
	`

	result, err := r.q.Exec(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete members for user %s: %w", userID, err)
	}

	return result.RowsAffected(), nil
}

func scanMembers(rows pgx.Rows) ([]*models.Member, error) {
	var members []*models.Member
	for rows.Next() {
		var member models.Member
		err := rows.Scan(
			&member.UserID,
			&member.GuildID,
			&member.Cakes,
			&member.Points,
			&member.CakesToday,
			&member.CakesTodayReset,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}
