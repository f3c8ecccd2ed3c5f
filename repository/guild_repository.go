package repository

import (
	"context"
	"fmt"

	"caketoss/database"
	"caketoss/models"
	"github.com/jackc/pgx/v5"
)

// GuildRepository implements the GuildRepository interface
type GuildRepository struct {
	q queryable
}

// NewGuildRepository creates a new guild repository
func NewGuildRepository(db *database.DB) *GuildRepository {
	return &GuildRepository{q: db.Pool}
}

// newGuildRepositoryWithTx creates a new guild repository with a transaction
func newGuildRepositoryWithTx(tx queryable) *GuildRepository {
	return &GuildRepository{q: tx}
}

// EnsureExists inserts the guild with zeroed totals if it is not already
// present. Existing aggregates are never overwritten.
func (r *GuildRepository) EnsureExists(ctx context.Context, guildID, name string) error {
	query := `
		INSERT INTO guilds (guild_id, name)
		VALUES ($1, $2)
		ON CONFLICT (guild_id) DO NOTHING
	`

	if _, err := r.q.Exec(ctx, query, guildID, name); err != nil {
		return fmt.Errorf("failed to ensure guild %s exists: %w", guildID, err)
	}

	return nil
}

// Get retrieves a guild by its ID, returning nil when no row matches
func (r *GuildRepository) Get(ctx context.Context, guildID string) (*models.Guild, error) {
	query := `
		SELECT guild_id, name, cakes, points
		FROM guilds
		WHERE guild_id = $1
	`

	var guild models.Guild
	err := r.q.QueryRow(ctx, query, guildID).Scan(
		&guild.GuildID,
		&guild.Name,
		&guild.Cakes,
		&guild.Points,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guild %s: %w", guildID, err)
	}

	return &guild, nil
}

// AddThrow applies one successful throw to the guild totals and refreshes
// the last-seen display name
func (r *GuildRepository) AddThrow(ctx context.Context, guildID, name string, points int64) error {
	query := `
		UPDATE guilds
		SET name = $1, points = points + $2, cakes = cakes + 1
		WHERE guild_id = $3
	`

	result, err := r.q.Exec(ctx, query, name, points, guildID)
	if err != nil {
		return fmt.Errorf("failed to add throw to guild %s: %w", guildID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("guild %s not found", guildID)
	}

	return nil
}

// Top returns guilds ordered descending by the given sort key. Ordering of
// rows with equal sort values follows storage order and is not guaranteed.
func (r *GuildRepository) Top(ctx context.Context, sort models.SortKey, limit, offset int) ([]*models.Guild, error) {
	// Dispatch on the closed enum to a fixed query; the sort key never
	// reaches the SQL text as a string.
	var query string
	switch sort {
	case models.SortByCakes:
		query = `
			SELECT guild_id, name, cakes, points
			FROM guilds
			ORDER BY cakes DESC
			LIMIT $1 OFFSET $2
		`
	case models.SortByPoints:
		query = `
			SELECT guild_id, name, cakes, points
			FROM guilds
			ORDER BY points DESC
			LIMIT $1 OFFSET $2
		`
	default:
		return nil, fmt.Errorf("unknown sort key: %s", sort)
	}

	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get top guilds: %w", err)
	}
	defer rows.Close()

	var guilds []*models.Guild
	for rows.Next() {
		var guild models.Guild
		if err := rows.Scan(&guild.GuildID, &guild.Name, &guild.Cakes, &guild.Points); err != nil {
			return nil, fmt.Errorf("failed to scan guild: %w", err)
		}
		guilds = append(guilds, &guild)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate guilds: %w", err)
	}

	return guilds, nil
}

// DecrementTotals removes a departing member's contribution from the guild
// aggregates
func (r *GuildRepository) DecrementTotals(ctx context.Context, guildID string, cakes, points int64) error {
	query := `
		UPDATE guilds
		SET cakes = cakes - $1, points = points - $2
		WHERE guild_id = $3
	`

	if _, err := r.q.Exec(ctx, query, cakes, points, guildID); err != nil {
		return fmt.Errorf("failed to decrement totals for guild %s: %w", guildID, err)
	}

	return nil
}

// PruneEmpty deletes every guild whose cake count has reached zero and
// returns how many were removed
func (r *GuildRepository) PruneEmpty(ctx context.Context) (int64, error) {
	query := `
		DELETE FROM guilds
		WHERE cakes = 0
	`

	result, err := r.q.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to prune empty guilds: %w", err)
	}

	return result.RowsAffected(), nil
}
