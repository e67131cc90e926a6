package comments

import "context"

// Service defines the business logic interface for comments
type Service interface {
	// CreateComment always inserts a new comment and notifies the post author
	// in the same transaction.
	CreateComment(ctx context.Context, req CreateCommentRequest) (*Comment, error)

	GetComment(ctx context.Context, id int64) (*Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]*Comment, error)
	ListByUser(ctx context.Context, userID int64) ([]*Comment, error)

	// UpdateComment edits the text only; it never notifies anyone
	UpdateComment(ctx context.Context, req UpdateCommentRequest) (*Comment, error)

	DeleteComment(ctx context.Context, id int64) error
}

// Repository defines the data access interface for comments
type Repository interface {
	Create(ctx context.Context, comment *Comment) (*Comment, error)

	// GetByID returns ErrCommentNotFound when absent
	GetByID(ctx context.Context, id int64) (*Comment, error)

	ListByPost(ctx context.Context, postID int64) ([]*Comment, error)
	ListByUser(ctx context.Context, userID int64) ([]*Comment, error)

	// UpdateContent returns ErrCommentNotFound when absent
	UpdateContent(ctx context.Context, id int64, content string) (*Comment, error)

	// Delete returns ErrCommentNotFound when absent
	Delete(ctx context.Context, id int64) error
}
