package follows

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"Skillnet/internal/core/notifications"
	"Skillnet/internal/core/txn"
	"Skillnet/internal/core/users"
)

type followService struct {
	repo      Repository
	directory users.Directory
	notifier  notifications.Emitter
	tx        txn.Transactor
	logger    *slog.Logger
}

// NewFollowService creates a new follow graph service
func NewFollowService(
	repo Repository,
	directory users.Directory,
	notifier notifications.Emitter,
	tx txn.Transactor,
	logger *slog.Logger,
) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &followService{
		repo:      repo,
		directory: directory,
		notifier:  notifier,
		tx:        tx,
		logger:    logger,
	}
}

// Follow creates a follow edge and emits the "started following you" notification
func (s *followService) Follow(ctx context.Context, followerID, followeeID int64) (*Follow, error) {
	var created *Follow

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		follower, err := s.directory.Resolve(ctx, followerID)
		if err != nil {
			return fmt.Errorf("follower %d: %w", followerID, err)
		}
		followee, err := s.directory.Resolve(ctx, followeeID)
		if err != nil {
			return fmt.Errorf("followee %d: %w", followeeID, err)
		}

		// Lookup-before-insert is the only uniqueness guard for the pair
		if _, err := s.repo.GetByPair(ctx, followerID, followeeID); err == nil {
			return ErrAlreadyFollowing
		} else if !errors.Is(err, ErrFollowNotFound) {
			return fmt.Errorf("failed to check existing follow: %w", err)
		}

		created, err = s.repo.Create(ctx, &Follow{
			FollowerID: follower.ID,
			FolloweeID: followee.ID,
		})
		if err != nil {
			return fmt.Errorf("failed to create follow: %w", err)
		}

		if _, err := s.notifier.Create(ctx, followee.ID, notifications.FollowedContent(follower.DisplayName)); err != nil {
			return fmt.Errorf("failed to notify followee: %w", err)
		}
		return nil
	})
	if err != nil {
		if IsConflict(err) {
			s.logger.Warn("duplicate follow rejected", "follower_id", followerID, "followee_id", followeeID)
		}
		return nil, err
	}

	s.logger.Info("follow created", "follow_id", created.ID, "follower_id", followerID, "followee_id", followeeID)
	return created, nil
}

// Unfollow removes an existing follow edge
func (s *followService) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetByPair(ctx, followerID, followeeID)
		if err != nil {
			return err
		}
		return s.repo.Delete(ctx, existing.ID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("follow removed", "follower_id", followerID, "followee_id", followeeID)
	return nil
}

// IsFollowing reports whether followerID follows followeeID
func (s *followService) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	_, err := s.repo.GetByPair(ctx, followerID, followeeID)
	if errors.Is(err, ErrFollowNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}
	return true, nil
}

// FollowerCount counts edges where the user is the followee
func (s *followService) FollowerCount(ctx context.Context, userID int64) (int, error) {
	if _, err := s.directory.Resolve(ctx, userID); err != nil {
		return 0, err
	}
	return s.repo.CountFollowers(ctx, userID)
}

// FollowingCount counts edges where the user is the follower
func (s *followService) FollowingCount(ctx context.Context, userID int64) (int, error) {
	if _, err := s.directory.Resolve(ctx, userID); err != nil {
		return 0, err
	}
	return s.repo.CountFollowing(ctx, userID)
}

// FollowersOf lists edges where the user is the followee
func (s *followService) FollowersOf(ctx context.Context, userID int64) ([]*Follow, error) {
	if _, err := s.directory.Resolve(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListFollowers(ctx, userID)
}

// FollowingOf lists edges where the user is the follower
func (s *followService) FollowingOf(ctx context.Context, userID int64) ([]*Follow, error) {
	if _, err := s.directory.Resolve(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListFollowing(ctx, userID)
}
