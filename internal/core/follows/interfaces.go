package follows

import "context"

// Service defines the follow graph operations
type Service interface {
	// Follow creates the edge and notifies the followee in one transaction.
	// Returns users.ErrUserNotFound if either side does not resolve and
	// ErrAlreadyFollowing if the edge exists.
	Follow(ctx context.Context, followerID, followeeID int64) (*Follow, error)

	// Unfollow removes the edge. Returns ErrFollowNotFound if absent.
	// No notification is emitted or retracted.
	Unfollow(ctx context.Context, followerID, followeeID int64) error

	// IsFollowing never reports a domain error; unknown ids mean false.
	IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error)

	FollowerCount(ctx context.Context, userID int64) (int, error)
	FollowingCount(ctx context.Context, userID int64) (int, error)

	// FollowersOf returns edges whose followee is userID, in insertion order
	FollowersOf(ctx context.Context, userID int64) ([]*Follow, error)

	// FollowingOf returns edges whose follower is userID, in insertion order
	FollowingOf(ctx context.Context, userID int64) ([]*Follow, error)
}

// Repository defines the data access interface for follow edges
type Repository interface {
	Create(ctx context.Context, follow *Follow) (*Follow, error)

	// GetByPair returns ErrFollowNotFound when no edge exists
	GetByPair(ctx context.Context, followerID, followeeID int64) (*Follow, error)

	// Delete returns ErrFollowNotFound when the edge is already gone
	Delete(ctx context.Context, id int64) error

	CountFollowers(ctx context.Context, followeeID int64) (int, error)
	CountFollowing(ctx context.Context, followerID int64) (int, error)

	ListFollowers(ctx context.Context, followeeID int64) ([]*Follow, error)
	ListFollowing(ctx context.Context, followerID int64) ([]*Follow, error)
}
