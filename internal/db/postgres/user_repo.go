package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Skillnet/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

// Create inserts a new user into the users table
func (r *postgresUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	query := `
		INSERT INTO users (first_name, last_name, email)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	created := *user
	err := conn(ctx, r.db).QueryRowContext(ctx, query, user.FirstName, user.LastName, user.Email).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if _, ok := violation(err, codeUniqueViolation); ok {
			return nil, users.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &created, nil
}

// GetByID retrieves a user by id
func (r *postgresUserRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	user := &users.User{}
	query := `SELECT id, first_name, last_name, email, created_at FROM users WHERE id = $1`

	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}
