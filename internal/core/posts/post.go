package posts

import "time"

// Post is a learning update authored by a user.
// The feed treats posts as opaque items; it never reorders them beyond shuffling.
type Post struct {
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	Description string    `json:"description" db:"description"`
	ID          int64     `json:"postId" db:"post_id"`
	AuthorID    int64     `json:"authorId" db:"author_id"`
}

// CreatePostRequest represents input for creating a new post
type CreatePostRequest struct {
	Description string `json:"description"`
	AuthorID    int64  `json:"-"` // Extracted from auth, not from the body
}
