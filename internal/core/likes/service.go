package likes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"Skillnet/internal/core/notifications"
	"Skillnet/internal/core/posts"
	"Skillnet/internal/core/txn"
	"Skillnet/internal/core/users"
)

type likeService struct {
	repo      Repository
	posts     posts.Store
	directory users.Directory
	notifier  notifications.Emitter
	tx        txn.Transactor
	logger    *slog.Logger
}

// NewLikeService creates a new like service
func NewLikeService(
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
	return &likeService{
		repo:      repo,
		posts:     postStore,
		directory: directory,
		notifier:  notifier,
		tx:        tx,
		logger:    logger,
	}
}

// Like records a like and notifies the post author on first creation only
func (s *likeService) Like(ctx context.Context, userID, postID int64) (*Like, bool, error) {
	var (
		result  *Like
		created bool
	)

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		actor, err := s.directory.Resolve(ctx, userID)
		if err != nil {
			return err
		}
		post, err := s.posts.GetByID(ctx, postID)
		if err != nil {
			return err
		}

		existing, err := s.repo.GetByUserAndPost(ctx, userID, postID)
		if err == nil {
			result = existing
			return nil
		}
		if !errors.Is(err, ErrLikeNotFound) {
			return fmt.Errorf("failed to check existing like: %w", err)
		}

		result, err = s.repo.Create(ctx, &Like{UserID: actor.ID, PostID: post.ID})
		if err != nil {
			return fmt.Errorf("failed to create like: %w", err)
		}
		created = true

		if _, err := s.notifier.Create(ctx, post.AuthorID, notifications.LikedContent(actor.DisplayName, post.Description)); err != nil {
			return fmt.Errorf("failed to notify post author: %w", err)
		}
		return nil
	})
	if errors.Is(err, ErrAlreadyLiked) {
		// Lost the insert race to a concurrent like; the failed tx is gone, so re-read outside it
		result, err = s.repo.GetByUserAndPost(ctx, userID, postID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to load concurrent like: %w", err)
		}
		created = false
	}
	if err != nil {
		return nil, false, err
	}

	if created {
		s.logger.Info("like created", "like_id", result.ID, "user_id", userID, "post_id", postID)
	} else {
		s.logger.Warn("post already liked", "user_id", userID, "post_id", postID)
	}
	return result, created, nil
}

// Unlike removes a like without touching the notification it produced
func (s *likeService) Unlike(ctx context.Context, userID, postID int64) error {
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetByUserAndPost(ctx, userID, postID)
		if err != nil {
			return err
		}
		return s.repo.Delete(ctx, existing.ID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("like removed", "user_id", userID, "post_id", postID)
	return nil
}

// ListByPost lists the likes on a post
func (s *likeService) ListByPost(ctx context.Context, postID int64) ([]*Like, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.repo.ListByPost(ctx, postID)
}
