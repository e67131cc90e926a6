package likes

import "context"

// Service defines the like interaction
type Service interface {
	// Like is idempotent per (user, post). The boolean reports whether a new
	// like was created; only a new like notifies the post author.
	Like(ctx context.Context, userID, postID int64) (*Like, bool, error)

	// Unlike removes the like. The notification sent on the original like stays.
	Unlike(ctx context.Context, userID, postID int64) error

	ListByPost(ctx context.Context, postID int64) ([]*Like, error)
}

// Repository defines the data access interface for likes
type Repository interface {
	Create(ctx context.Context, like *Like) (*Like, error)

	// GetByUserAndPost returns ErrLikeNotFound when absent
	GetByUserAndPost(ctx context.Context, userID, postID int64) (*Like, error)

	// Delete returns ErrLikeNotFound when absent
	Delete(ctx context.Context, id int64) error

	ListByPost(ctx context.Context, postID int64) ([]*Like, error)
}
