package users

import (
	"strings"
	"time"
)

// User is an account as stored by the identity directory.
// The social graph never mutates users; it only refers to them by ID.
type User struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	FirstName string    `json:"firstName" db:"first_name"`
	LastName  string    `json:"lastName" db:"last_name"`
	Email     string    `json:"email" db:"email"`
	ID        int64     `json:"userId" db:"user_id"`
}

// DisplayName renders the name shown to other users in notifications
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// UserRef is the read-only view of a user handed to the social graph
type UserRef struct {
	DisplayName string `json:"displayName"`
	ID          int64  `json:"userId"`
}

// CreateUserRequest represents the input for creating a new user
type CreateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
