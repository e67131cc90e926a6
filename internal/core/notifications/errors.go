package notifications

import "errors"

var (
	// ErrNotificationNotFound indicates the requested notification doesn't exist
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrContentEmpty indicates the rendered content is empty
	ErrContentEmpty = errors.New("notification content is required")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotificationNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrContentEmpty)
}
