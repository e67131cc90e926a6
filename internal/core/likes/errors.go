package likes

import "errors"

var (
	// ErrLikeNotFound indicates the user has not liked the post
	ErrLikeNotFound = errors.New("like not found")

	// ErrAlreadyLiked is returned by Repository.Create when the (user, post)
	// pair already exists, e.g. when a concurrent request inserted it first
	ErrAlreadyLiked = errors.New("post already liked")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrLikeNotFound)
}
