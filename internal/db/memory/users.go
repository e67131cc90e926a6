package memory

import (
	"context"
	"strings"

	"Skillnet/internal/core/users"
)

type userRepo struct{ s *Store }

func (r *userRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	defer r.s.lock(ctx)()
	if err := r.s.fault("users.Create"); err != nil {
		return nil, err
	}

	for _, u := range r.s.state.users {
		if strings.EqualFold(u.Email, user.Email) {
			return nil, users.ErrEmailTaken
		}
	}

	row := *user
	row.ID = r.s.nextID("users")
	row.CreatedAt = r.s.now()
	r.s.state.users = append(r.s.state.users, row)
	return &row, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	defer r.s.lock(ctx)()
	if err := r.s.fault("users.GetByID"); err != nil {
		return nil, err
	}

	for _, u := range r.s.state.users {
		if u.ID == id {
			row := u
			return &row, nil
		}
	}
	return nil, users.ErrUserNotFound
}
