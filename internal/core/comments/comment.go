package comments

import "time"

// Comment is a reply by a user on a post. Comments are never deduplicated.
type Comment struct {
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" db:"updated_at"`
	Content   string     `json:"content" db:"content"`
	ID        int64      `json:"commentId" db:"id"`
	UserID    int64      `json:"userId" db:"user_id"`
	PostID    int64      `json:"postId" db:"post_id"`
}

// CreateCommentRequest represents input for creating a comment
type CreateCommentRequest struct {
	Content string `json:"content"`
	PostID  int64  `json:"postId"`
	UserID  int64  `json:"-"` // Extracted from auth, not from the body
}

// UpdateCommentRequest represents input for editing a comment's text
type UpdateCommentRequest struct {
	Content string `json:"content"`
	ID      int64  `json:"-"`
}
