package memory

import (
	"context"

	"Skillnet/internal/core/posts"
	"Skillnet/internal/core/users"
)

type postRepo struct{ s *Store }

func (r *postRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	defer r.s.lock(ctx)()
	if err := r.s.fault("posts.Create"); err != nil {
		return nil, err
	}
	if !r.s.userExists(post.AuthorID) {
		return nil, users.ErrUserNotFound
	}

	row := *post
	row.ID = r.s.nextID("posts")
	row.CreatedAt = r.s.now()
	r.s.state.posts = append(r.s.state.posts, row)
	return &row, nil
}

func (r *postRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	defer r.s.lock(ctx)()
	if err := r.s.fault("posts.GetByID"); err != nil {
		return nil, err
	}

	for _, p := range r.s.state.posts {
		if p.ID == id {
			row := p
			return &row, nil
		}
	}
	return nil, posts.ErrNotFound
}

func (r *postRepo) PostsByAuthor(ctx context.Context, authorID int64) ([]*posts.Post, error) {
	defer r.s.lock(ctx)()
	if err := r.s.fault("posts.PostsByAuthor"); err != nil {
		return nil, err
	}

	result := []*posts.Post{}
	for _, p := range r.s.state.posts {
		if p.AuthorID == authorID {
			row := p
			result = append(result, &row)
		}
	}
	return result, nil
}

func (r *postRepo) PostsByAuthors(ctx context.Context, authorIDs []int64) (map[int64][]*posts.Post, error) {
	defer r.s.lock(ctx)()
	if err := r.s.fault("posts.PostsByAuthors"); err != nil {
		return nil, err
	}

	wanted := make(map[int64]bool, len(authorIDs))
	for _, id := range authorIDs {
		wanted[id] = true
	}
	result := make(map[int64][]*posts.Post)
	for _, p := range r.s.state.posts {
		if wanted[p.AuthorID] {
			row := p
			result[p.AuthorID] = append(result[p.AuthorID], &row)
		}
	}
	return result, nil
}

// userExists must be called with the lock held
func (s *Store) userExists(id int64) bool {
	for _, u := range s.state.users {
		if u.ID == id {
			return true
		}
	}
	return false
}
