package posts

import "context"

// Store is the content store the social graph reads from.
// It owns the post lifecycle; the feed and the interaction triggers only query it.
type Store interface {
	// GetByID returns ErrNotFound when the post does not exist
	GetByID(ctx context.Context, id int64) (*Post, error)

	// PostsByAuthor returns every post by the author in insertion order.
	// An author with no posts yields an empty slice, not an error.
	PostsByAuthor(ctx context.Context, authorID int64) ([]*Post, error)

	// PostsByAuthors loads the posts of several authors in one round trip,
	// keyed by author id. Authors with no posts are absent from the map.
	PostsByAuthors(ctx context.Context, authorIDs []int64) (map[int64][]*Post, error)
}

// Repository extends Store with the write path used by the posts endpoint
type Repository interface {
	Store
	Create(ctx context.Context, post *Post) (*Post, error)
}

// Service defines the business logic interface for posts
type Service interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error)
	GetPost(ctx context.Context, id int64) (*Post, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]*Post, error)
}
