package notifications

import "context"

// Emitter is the part of the outbox used by fanout paths (follow, like, comment).
// Create runs inside the caller's transaction when one is present in ctx.
type Emitter interface {
	Create(ctx context.Context, recipientID int64, content string) (*Notification, error)
}

// Service defines the business logic interface for the notification outbox
type Service interface {
	Emitter

	GetByID(ctx context.Context, id int64) (*Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]*Notification, error)
	ListUnreadByUser(ctx context.Context, userID int64) ([]*Notification, error)

	// MarkRead flips a single notification to read. Already-read is a no-op.
	MarkRead(ctx context.Context, id int64) error

	// MarkAllRead flips every notification that is unread at statement time
	// and returns how many rows changed.
	MarkAllRead(ctx context.Context, userID int64) (int64, error)

	Delete(ctx context.Context, id int64) error
	DeleteAllForUser(ctx context.Context, userID int64) (int64, error)
}

// Repository defines the data access interface for notifications
type Repository interface {
	Create(ctx context.Context, n *Notification) (*Notification, error)

	// GetByID returns ErrNotificationNotFound when absent
	GetByID(ctx context.Context, id int64) (*Notification, error)

	// ListByUser and ListUnreadByUser return newest first
	ListByUser(ctx context.Context, recipientID int64) ([]*Notification, error)
	ListUnreadByUser(ctx context.Context, recipientID int64) ([]*Notification, error)

	// MarkRead returns ErrNotificationNotFound when absent
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context, recipientID int64) (int64, error)

	// Delete returns ErrNotificationNotFound when absent
	Delete(ctx context.Context, id int64) error
	DeleteAllForUser(ctx context.Context, recipientID int64) (int64, error)
}
