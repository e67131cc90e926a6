package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Skillnet/internal/core/likes"
	"Skillnet/internal/core/posts"
	"Skillnet/internal/core/users"
)

type postgresLikeRepo struct {
	db *sql.DB
}

// NewLikeRepository creates a new PostgreSQL like repository
func NewLikeRepository(db *sql.DB) likes.Repository {
	return &postgresLikeRepo{db: db}
}

// Create inserts a like. The (user_id, post_id) pair is unique.
func (r *postgresLikeRepo) Create(ctx context.Context, like *likes.Like) (*likes.Like, error) {
	query := `
		INSERT INTO likes (user_id, post_id)
		VALUES ($1, $2)
		RETURNING id, created_at`

	created := *like
	err := conn(ctx, r.db).QueryRowContext(ctx, query, like.UserID, like.PostID).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if _, ok := violation(err, codeUniqueViolation); ok {
			return nil, likes.ErrAlreadyLiked
		}
		if constraint, ok := violation(err, codeForeignKeyViolation); ok {
			if strings.Contains(constraint, "post_id") {
				return nil, posts.ErrNotFound
			}
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to insert like: %w", err)
	}

	return &created, nil
}

func (r *postgresLikeRepo) GetByUserAndPost(ctx context.Context, userID, postID int64) (*likes.Like, error) {
	like := &likes.Like{}
	query := `SELECT id, user_id, post_id, created_at FROM likes WHERE user_id = $1 AND post_id = $2`

	err := conn(ctx, r.db).QueryRowContext(ctx, query, userID, postID).
		Scan(&like.ID, &like.UserID, &like.PostID, &like.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, likes.ErrLikeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get like: %w", err)
	}

	return like, nil
}

func (r *postgresLikeRepo) Delete(ctx context.Context, id int64) error {
	result, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM likes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return requireAffected(result, likes.ErrLikeNotFound)
}

// ListByPost returns the post's likes in insertion order
func (r *postgresLikeRepo) ListByPost(ctx context.Context, postID int64) ([]*likes.Like, error) {
	query := `
		SELECT id, user_id, post_id, created_at
		FROM likes
		WHERE post_id = $1
		ORDER BY id ASC`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := []*likes.Like{}
	for rows.Next() {
		like := &likes.Like{}
		if err := rows.Scan(&like.ID, &like.UserID, &like.PostID, &like.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan like: %w", err)
		}
		result = append(result, like)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating likes: %w", err)
	}

	return result, nil
}
