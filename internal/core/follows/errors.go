package follows

import "errors"

var (
	// ErrFollowNotFound indicates no edge exists for the follower/followee pair
	ErrFollowNotFound = errors.New("follow relationship not found")

	// ErrAlreadyFollowing indicates the edge already exists
	ErrAlreadyFollowing = errors.New("already following this user")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrFollowNotFound)
}

// IsConflict checks if an error is a conflict/already exists error
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyFollowing)
}
