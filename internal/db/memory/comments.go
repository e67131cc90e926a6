package memory

import (
	"context"

	"Skillnet/internal/core/comments"
	"Skillnet/internal/core/posts"
	"Skillnet/internal/core/users"
)

type commentRepo struct{ s *Store }

func (r *commentRepo) Create(ctx context.Context, comment *comments.Comment) (*comments.Comment, error) {
	defer r.s.lock(ctx)()
	if err := r.s.fault("comments.Create"); err != nil {
		return nil, err
	}
	if !r.s.userExists(comment.UserID) {
		return nil, users.ErrUserNotFound
	}
	if !r.s.postExists(comment.PostID) {
		return nil, posts.ErrNotFound
	}

	row := *comment
	row.ID = r.s.nextID("comments")
	row.CreatedAt = r.s.now()
	row.UpdatedAt = nil
	r.s.state.comments = append(r.s.state.comments, row)
	return copyComment(row), nil
}

func (r *commentRepo) GetByID(ctx context.Context, id int64) (*comments.Comment, error) {
	defer r.s.lock(ctx)()
	if err := r.s.fault("comments.GetByID"); err != nil {
		return nil, err
	}

	if i := r.s.commentIndex(id); i >= 0 {
		return copyComment(r.s.state.comments[i]), nil
	}
	return nil, comments.ErrCommentNotFound
}

func (r *commentRepo) ListByPost(ctx context.Context, postID int64) ([]*comments.Comment, error) {
	return r.list(ctx, "comments.ListByPost", func(c comments.Comment) bool { return c.PostID == postID })
}

func (r *commentRepo) ListByUser(ctx context.Context, userID int64) ([]*comments.Comment, error) {
	return r.list(ctx, "comments.ListByUser", func(c comments.Comment) bool { return c.UserID == userID })
}

func (r *commentRepo) UpdateContent(ctx context.Context, id int64, content string) (*comments.Comment, error) {
	defer r.s.lock(ctx)()
	if err := r.s.fault("comments.UpdateContent"); err != nil {
		return nil, err
	}

	i := r.s.commentIndex(id)
	if i < 0 {
		return nil, comments.ErrCommentNotFound
	}
	now := r.s.now()
	r.s.state.comments[i].Content = content
	r.s.state.comments[i].UpdatedAt = &now
	return copyComment(r.s.state.comments[i]), nil
}

func (r *commentRepo) Delete(ctx context.Context, id int64) error {
	defer r.s.lock(ctx)()
	if err := r.s.fault("comments.Delete"); err != nil {
		return err
	}

	i := r.s.commentIndex(id)
	if i < 0 {
		return comments.ErrCommentNotFound
	}
	all := r.s.state.comments
	r.s.state.comments = append(all[:i:i], all[i+1:]...)
	return nil
}

func (r *commentRepo) list(ctx context.Context, op string, match func(comments.Comment) bool) ([]*comments.Comment, error) {
	defer r.s.lock(ctx)()
	if err := r.s.fault(op); err != nil {
		return nil, err
	}

	result := []*comments.Comment{}
	for _, c := range r.s.state.comments {
		if match(c) {
			result = append(result, copyComment(c))
		}
	}
	return result, nil
}

// commentIndex must be called with the lock held
func (s *Store) commentIndex(id int64) int {
	for i, c := range s.state.comments {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func copyComment(c comments.Comment) *comments.Comment {
	if c.UpdatedAt != nil {
		t := *c.UpdatedAt
		c.UpdatedAt = &t
	}
	return &c
}
