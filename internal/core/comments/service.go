package comments

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"Skillnet/internal/core/notifications"
	"Skillnet/internal/core/posts"
	"Skillnet/internal/core/txn"
	"Skillnet/internal/core/users"
)

const maxContentLength = 10000

type commentService struct {
	repo      Repository
	posts     posts.Store
	directory users.Directory
	notifier  notifications.Emitter
	tx        txn.Transactor
	logger    *slog.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(
	repo Repository,
	postStore posts.Store,
	directory users.Directory,
	notifier notifications.Emitter,
	tx txn.Transactor,
	logger *slog.Logger,
) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{
		repo:      repo,
		posts:     postStore,
		directory: directory,
		notifier:  notifier,
		tx:        tx,
		logger:    logger,
	}
}

// CreateComment stores a comment and notifies the post author
func (s *commentService) CreateComment(ctx context.Context, req CreateCommentRequest) (*Comment, error) {
	content, err := validateContent(req.Content)
	if err != nil {
		return nil, err
	}

	var created *Comment
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		post, err := s.posts.GetByID(ctx, req.PostID)
		if err != nil {
			return err
		}
		actor, err := s.directory.Resolve(ctx, req.UserID)
		if err != nil {
			return err
		}

		created, err = s.repo.Create(ctx, &Comment{
			UserID:  actor.ID,
			PostID:  post.ID,
			Content: content,
		})
		if err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}

		if _, err := s.notifier.Create(ctx, post.AuthorID, notifications.CommentedContent(actor.DisplayName, post.Description)); err != nil {
			return fmt.Errorf("failed to notify post author: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("comment created", "comment_id", created.ID, "post_id", created.PostID, "user_id", created.UserID)
	return created, nil
}

// GetComment retrieves a comment by ID
func (s *commentService) GetComment(ctx context.Context, id int64) (*Comment, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByPost retrieves all comments on a post, oldest first
func (s *commentService) ListByPost(ctx context.Context, postID int64) ([]*Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.repo.ListByPost(ctx, postID)
}

// ListByUser retrieves all comments written by a user, oldest first
func (s *commentService) ListByUser(ctx context.Context, userID int64) ([]*Comment, error) {
	if _, err := s.directory.Resolve(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, userID)
}

// UpdateComment replaces the comment text and stamps updated_at
func (s *commentService) UpdateComment(ctx context.Context, req UpdateCommentRequest) (*Comment, error) {
	content, err := validateContent(req.Content)
	if err != nil {
		return nil, err
	}

	var updated *Comment
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		updated, err = s.repo.UpdateContent(ctx, req.ID, content)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("comment updated", "comment_id", req.ID)
	return updated, nil
}

// DeleteComment hard-deletes a comment
func (s *commentService) DeleteComment(ctx context.Context, id int64) error {
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("comment deleted", "comment_id", id)
	return nil
}

func validateContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrContentEmpty
	}
	if utf8.RuneCountInString(content) > maxContentLength {
		return "", ErrContentTooLong
	}
	return content, nil
}
