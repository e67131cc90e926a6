package memory

import (
	"context"

	"Skillnet/internal/core/follows"
	"Skillnet/internal/core/users"
)

type followRepo struct{ s *Store }

// Create has no uniqueness check on the pair, matching the SQL schema
func (r *followRepo) Create(ctx context.Context, follow *follows.Follow) (*follows.Follow, error) {
	defer r.s.lock(ctx)()
	if err := r.s.fault("follows.Create"); err != nil {
		return nil, err
	}
	if !r.s.userExists(follow.FollowerID) || !r.s.userExists(follow.FolloweeID) {
		return nil, users.ErrUserNotFound
	}

	row := *follow
	row.ID = r.s.nextID("follows")
	row.CreatedAt = r.s.now()
	r.s.state.follows = append(r.s.state.follows, row)
	return &row, nil
}

func (r *followRepo) GetByPair(ctx context.Context, followerID, followeeID int64) (*follows.Follow, error) {
	defer r.s.lock(ctx)()
	if err := r.s.fault("follows.GetByPair"); err != nil {
		return nil, err
	}

	for _, f := range r.s.state.follows {
		if f.FollowerID == followerID && f.FolloweeID == followeeID {
			row := f
			return &row, nil
		}
	}
	return nil, follows.ErrFollowNotFound
}

func (r *followRepo) Delete(ctx context.Context, id int64) error {
	defer r.s.lock(ctx)()
	if err := r.s.fault("follows.Delete"); err != nil {
		return err
	}

	for i, f := range r.s.state.follows {
		if f.ID == id {
			r.s.state.follows = append(r.s.state.follows[:i:i], r.s.state.follows[i+1:]...)
			return nil
		}
	}
	return follows.ErrFollowNotFound
}

func (r *followRepo) CountFollowers(ctx context.Context, followeeID int64) (int, error) {
	edges, err := r.ListFollowers(ctx, followeeID)
	return len(edges), err
}

func (r *followRepo) CountFollowing(ctx context.Context, followerID int64) (int, error) {
	edges, err := r.ListFollowing(ctx, followerID)
	return len(edges), err
}

func (r *followRepo) ListFollowers(ctx context.Context, followeeID int64) ([]*follows.Follow, error) {
	return r.list(ctx, "follows.ListFollowers", func(f follows.Follow) bool { return f.FolloweeID == followeeID })
}

func (r *followRepo) ListFollowing(ctx context.Context, followerID int64) ([]*follows.Follow, error) {
	return r.list(ctx, "follows.ListFollowing", func(f follows.Follow) bool { return f.FollowerID == followerID })
}

func (r *followRepo) list(ctx context.Context, op string, match func(follows.Follow) bool) ([]*follows.Follow, error) {
	defer r.s.lock(ctx)()
	if err := r.s.fault(op); err != nil {
		return nil, err
	}

	result := []*follows.Follow{}
	for _, f := range r.s.state.follows {
		if match(f) {
			row := f
			result = append(result, &row)
		}
	}
	return result, nil
}
