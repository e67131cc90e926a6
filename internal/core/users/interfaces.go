package users

import "context"

// Repository defines the interface for user data persistence
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
}

// Directory resolves user identifiers for the social graph.
// Resolve returns ErrUserNotFound when the id does not exist.
type Directory interface {
	Resolve(ctx context.Context, id int64) (UserRef, error)
}

// Service defines the interface for user business logic
type Service interface {
	Directory
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
}
