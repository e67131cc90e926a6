package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"Skillnet/internal/core/posts"
	"Skillnet/internal/core/users"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		INSERT INTO posts (author_id, description)
		VALUES ($1, $2)
		RETURNING id, created_at`

	created := *post
	err := conn(ctx, r.db).QueryRowContext(ctx, query, post.AuthorID, post.Description).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if _, ok := violation(err, codeForeignKeyViolation); ok {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return &created, nil
}

// GetByID retrieves a post by id
func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	post := &posts.Post{}
	query := `SELECT id, author_id, description, created_at FROM posts WHERE id = $1`

	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).
		Scan(&post.ID, &post.AuthorID, &post.Description, &post.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// PostsByAuthor returns the author's posts in insertion order
func (r *postgresPostRepo) PostsByAuthor(ctx context.Context, authorID int64) ([]*posts.Post, error) {
	query := `
		SELECT id, author_id, description, created_at
		FROM posts
		WHERE author_id = $1
		ORDER BY id ASC`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by author: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := []*posts.Post{}
	for rows.Next() {
		post := &posts.Post{}
		if err := rows.Scan(&post.ID, &post.AuthorID, &post.Description, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		result = append(result, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return result, nil
}

// PostsByAuthors returns the posts of every listed author, grouped by author
func (r *postgresPostRepo) PostsByAuthors(ctx context.Context, authorIDs []int64) (map[int64][]*posts.Post, error) {
	result := make(map[int64][]*posts.Post)
	if len(authorIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT id, author_id, description, created_at
		FROM posts
		WHERE author_id = ANY($1)
		ORDER BY id ASC`

	rows, err := conn(ctx, r.db).QueryContext(ctx, query, pq.Array(authorIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by authors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		post := &posts.Post{}
		if err := rows.Scan(&post.ID, &post.AuthorID, &post.Description, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		result[post.AuthorID] = append(result[post.AuthorID], post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return result, nil
}
