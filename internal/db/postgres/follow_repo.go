package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Skillnet/internal/core/follows"
	"Skillnet/internal/core/users"
)

type postgresFollowRepo struct {
	db *sql.DB
}

// NewFollowRepository creates a new PostgreSQL follow edge repository
func NewFollowRepository(db *sql.DB) follows.Repository {
	return &postgresFollowRepo{db: db}
}

// Create inserts a follow edge. The table has no unique index on the pair,
// callers check GetByPair first inside the same transaction.
func (r *postgresFollowRepo) Create(ctx context.Context, follow *follows.Follow) (*follows.Follow, error) {
	query := `
		INSERT INTO follow_edge (follower_id, followee_id)
		VALUES ($1, $2)
		RETURNING id, created_at`

	created := *follow
	err := conn(ctx, r.db).QueryRowContext(ctx, query, follow.FollowerID, follow.FolloweeID).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if _, ok := violation(err, codeForeignKeyViolation); ok {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to insert follow edge: %w", err)
	}

	return &created, nil
}

// GetByPair returns the oldest edge for the pair
func (r *postgresFollowRepo) GetByPair(ctx context.Context, followerID, followeeID int64) (*follows.Follow, error) {
	follow := &follows.Follow{}
	query := `
		SELECT id, follower_id, followee_id, created_at
		FROM follow_edge
		WHERE follower_id = $1 AND followee_id = $2
		ORDER BY id ASC
		LIMIT 1`

	err := conn(ctx, r.db).QueryRowContext(ctx, query, followerID, followeeID).
		Scan(&follow.ID, &follow.FollowerID, &follow.FolloweeID, &follow.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, follows.ErrFollowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get follow edge: %w", err)
	}

	return follow, nil
}

// Delete removes an edge by id
func (r *postgresFollowRepo) Delete(ctx context.Context, id int64) error {
	result, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM follow_edge WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete follow edge: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rowsAffected == 0 {
		return follows.ErrFollowNotFound
	}

	return nil
}

func (r *postgresFollowRepo) CountFollowers(ctx context.Context, followeeID int64) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM follow_edge WHERE followee_id = $1`, followeeID)
}

func (r *postgresFollowRepo) CountFollowing(ctx context.Context, followerID int64) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM follow_edge WHERE follower_id = $1`, followerID)
}

func (r *postgresFollowRepo) count(ctx context.Context, query string, userID int64) (int, error) {
	var n int
	if err := conn(ctx, r.db).QueryRowContext(ctx, query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count follow edges: %w", err)
	}
	return n, nil
}

// ListFollowers returns edges pointing at followeeID in insertion order
func (r *postgresFollowRepo) ListFollowers(ctx context.Context, followeeID int64) ([]*follows.Follow, error) {
	return r.list(ctx, `
		SELECT id, follower_id, followee_id, created_at
		FROM follow_edge
		WHERE followee_id = $1
		ORDER BY id ASC`, followeeID)
}

// ListFollowing returns edges leaving followerID in insertion order
func (r *postgresFollowRepo) ListFollowing(ctx context.Context, followerID int64) ([]*follows.Follow, error) {
	return r.list(ctx, `
		SELECT id, follower_id, followee_id, created_at
		FROM follow_edge
		WHERE follower_id = $1
		ORDER BY id ASC`, followerID)
}

func (r *postgresFollowRepo) list(ctx context.Context, query string, userID int64) ([]*follows.Follow, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list follow edges: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := []*follows.Follow{}
	for rows.Next() {
		follow := &follows.Follow{}
		if err := rows.Scan(&follow.ID, &follow.FollowerID, &follow.FolloweeID, &follow.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan follow edge: %w", err)
		}
		result = append(result, follow)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating follow edges: %w", err)
	}

	return result, nil
}
