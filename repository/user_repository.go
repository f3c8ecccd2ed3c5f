package repository

import (
	"context"
	"fmt"

	"caketoss/database"
	"caketoss/models"
	"github.com/jackc/pgx/v5"
)

// UserRepository implements the UserRepository interface
type UserRepository struct {
	q queryable
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{q: db.Pool}
}

// newUserRepositoryWithTx creates a new user repository with a transaction
func newUserRepositoryWithTx(tx queryable) *UserRepository {
	return &UserRepository{q: tx}
}

// EnsureExists inserts the user with zeroed totals if not already present
func (r *UserRepository) EnsureExists(ctx context.Context, userID string) error {
	query := `
		INSERT INTO users (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`

	if _, err := r.q.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to ensure user %s exists: %w", userID, err)
	}

	return nil
}

// Get retrieves a user by their ID, returning nil when no row matches
func (r *UserRepository) Get(ctx context.Context, userID string) (*models.User, error) {
	query := `
		SELECT user_id, cakes, points
		FROM users
		WHERE user_id = $1
	`

	var user models.User
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&user.UserID,
		&user.Cakes,
		&user.Points,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}

	return &user, nil
}

// AddThrow applies one successful throw to the user's global totals
func (r *UserRepository) AddThrow(ctx context.Context, userID string, points int64) error {
	query := `
		UPDATE users
		SET points = points + $1, cakes = cakes + 1
		WHERE user_id = $2
	`

	result, err := r.q.Exec(ctx, query, points, userID)
	if err != nil {
		return fmt.Errorf("failed to add throw to user %s: %w", userID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", userID)
	}

	return nil
}

// Top returns users ordered descending by the given sort key
func (r *UserRepository) Top(ctx context.Context, sort models.SortKey, limit, offset int) ([]*models.User, error) {
	var query string
	switch sort {
	case models.SortByCakes:
		query = `
			SELECT user_id, cakes, points
			FROM users
			ORDER BY cakes DESC
			LIMIT $1 OFFSET $2
		`
	case models.SortByPoints:
		query = `
			SELECT user_id, cakes, points
			FROM users
			ORDER BY points DESC
			LIMIT $1 OFFSET $2
		`
	default:
		return nil, fmt.Errorf("unknown sort key: %s", sort)
	}

	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get top users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.UserID, &user.Cakes, &user.Points); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// Delete removes the user row. Member rows are expected to have been
// deleted first; the cascade is a safety net, not the deletion order.
func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	query := `
		DELETE FROM users
		WHERE user_id = $1
	`

	result, err := r.q.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", userID)
	}

	return nil
}
