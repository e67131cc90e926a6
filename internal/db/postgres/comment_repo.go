package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Skillnet/internal/core/comments"
	"Skillnet/internal/core/posts"
	"Skillnet/internal/core/users"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

const commentColumns = `id, user_id, post_id, content, created_at, updated_at`

// Create inserts a new comment into the comments table
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) (*comments.Comment, error) {
	query := `
		INSERT INTO comments (user_id, post_id, content)
		VALUES ($1, $2, $3)
		RETURNING ` + commentColumns

	row := conn(ctx, r.db).QueryRowContext(ctx, query, comment.UserID, comment.PostID, comment.Content)
	created, err := scanComment(row)
	if err != nil {
		if constraint, ok := violation(err, codeForeignKeyViolation); ok {
			if strings.Contains(constraint, "post_id") {
				return nil, posts.ErrNotFound
			}
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	return created, nil
}

func (r *postgresCommentRepo) GetByID(ctx context.Context, id int64) (*comments.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`

	comment, err := scanComment(conn(ctx, r.db).QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return comment, nil
}

// ListByPost returns the post's comments oldest first
func (r *postgresCommentRepo) ListByPost(ctx context.Context, postID int64) ([]*comments.Comment, error) {
	return r.list(ctx, `SELECT `+commentColumns+` FROM comments WHERE post_id = $1 ORDER BY id ASC`, postID)
}

// ListByUser returns the user's comments oldest first
func (r *postgresCommentRepo) ListByUser(ctx context.Context, userID int64) ([]*comments.Comment, error) {
	return r.list(ctx, `SELECT `+commentColumns+` FROM comments WHERE user_id = $1 ORDER BY id ASC`, userID)
}

// UpdateContent replaces the text and stamps updated_at
func (r *postgresCommentRepo) UpdateContent(ctx context.Context, id int64, content string) (*comments.Comment, error) {
	query := `
		UPDATE comments
		SET content = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + commentColumns

	comment, err := scanComment(conn(ctx, r.db).QueryRowContext(ctx, query, content, id))
	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return comment, nil
}

func (r *postgresCommentRepo) Delete(ctx context.Context, id int64) error {
	result, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return requireAffected(result, comments.ErrCommentNotFound)
}

func (r *postgresCommentRepo) list(ctx context.Context, query string, id int64) ([]*comments.Comment, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := []*comments.Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		result = append(result, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComment(row rowScanner) (*comments.Comment, error) {
	comment := &comments.Comment{}
	var updatedAt sql.NullTime
	if err := row.Scan(&comment.ID, &comment.UserID, &comment.PostID, &comment.Content, &comment.CreatedAt, &updatedAt); err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		comment.UpdatedAt = &updatedAt.Time
	}
	return comment, nil
}
