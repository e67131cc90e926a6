package memory

import (
	"context"

	"Skillnet/internal/core/likes"
	"Skillnet/internal/core/posts"
	"Skillnet/internal/core/users"
)

type likeRepo struct{ s *Store }

func (r *likeRepo) Create(ctx context.Context, like *likes.Like) (*likes.Like, error) {
	defer r.s.lock(ctx)()
	if err := r.s.fault("likes.Create"); err != nil {
		return nil, err
	}
	if !r.s.userExists(like.UserID) {
		return nil, users.ErrUserNotFound
	}
	if !r.s.postExists(like.PostID) {
		return nil, posts.ErrNotFound
	}
	for _, l := range r.s.state.likes {
		if l.UserID == like.UserID && l.PostID == like.PostID {
			return nil, likes.ErrAlreadyLiked
		}
	}

	row := *like
	row.ID = r.s.nextID("likes")
	row.CreatedAt = r.s.now()
	r.s.state.likes = append(r.s.state.likes, row)
	return &row, nil
}

func (r *likeRepo) GetByUserAndPost(ctx context.Context, userID, postID int64) (*likes.Like, error) {
	defer r.s.lock(ctx)()
	if err := r.s.fault("likes.GetByUserAndPost"); err != nil {
		return nil, err
	}

	for _, l := range r.s.state.likes {
		if l.UserID == userID && l.PostID == postID {
			row := l
			return &row, nil
		}
	}
	return nil, likes.ErrLikeNotFound
}

func (r *likeRepo) Delete(ctx context.Context, id int64) error {
	defer r.s.lock(ctx)()
	if err := r.s.fault("likes.Delete"); err != nil {
		return err
	}

	for i, l := range r.s.state.likes {
		if l.ID == id {
			r.s.state.likes = append(r.s.state.likes[:i:i], r.s.state.likes[i+1:]...)
			return nil
		}
	}
	return likes.ErrLikeNotFound
}

func (r *likeRepo) ListByPost(ctx context.Context, postID int64) ([]*likes.Like, error) {
	defer r.s.lock(ctx)()
	if err := r.s.fault("likes.ListByPost"); err != nil {
		return nil, err
	}

	result := []*likes.Like{}
	for _, l := range r.s.state.likes {
		if l.PostID == postID {
			row := l
			result = append(result, &row)
		}
	}
	return result, nil
}

// postExists must be called with the lock held
func (s *Store) postExists(id int64) bool {
	for _, p := range s.state.posts {
		if p.ID == id {
			return true
		}
	}
	return false
}
