package users

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
)

type userService struct {
	repo Repository
}

// NewUserService creates a new user service
func NewUserService(repo Repository) Service {
	return &userService{repo: repo}
}

// Resolve looks a user up and returns its read-only reference
func (s *userService) Resolve(ctx context.Context, id int64) (UserRef, error) {
	if id <= 0 {
		return UserRef{}, ErrUserNotFound
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return UserRef{}, err
	}

	return UserRef{ID: user.ID, DisplayName: user.DisplayName()}, nil
}

// CreateUser creates a new user in the directory
func (s *userService) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if req.FirstName == "" {
		return nil, NewValidationError("firstName", "required")
	}
	if req.Email == "" {
		return nil, NewValidationError("email", "required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, NewValidationError("email", "invalid email address")
	}

	user, err := s.repo.Create(ctx, &User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetUser retrieves a full user record by ID
func (s *userService) GetUser(ctx context.Context, id int64) (*User, error) {
	if id <= 0 {
		return nil, ErrUserNotFound
	}
	return s.repo.GetByID(ctx, id)
}
