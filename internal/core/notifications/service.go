package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"Skillnet/internal/core/txn"
	"Skillnet/internal/core/users"
)

type notificationService struct {
	repo      Repository
	directory users.Directory
	tx        txn.Transactor
	logger    *slog.Logger
}

// NewNotificationService creates a new notification outbox service
func NewNotificationService(repo Repository, directory users.Directory, tx txn.Transactor, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &notificationService{
		repo:      repo,
		directory: directory,
		tx:        tx,
		logger:    logger,
	}
}

// Create appends an unread notification to the recipient's outbox.
// The recipient must resolve; the notification is never addressed to a dangling id.
func (s *notificationService) Create(ctx context.Context, recipientID int64, content string) (*Notification, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrContentEmpty
	}

	var created *Notification
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		if _, err := s.directory.Resolve(ctx, recipientID); err != nil {
			return fmt.Errorf("notification recipient %d: %w", recipientID, err)
		}

		n, err := s.repo.Create(ctx, &Notification{
			RecipientID: recipientID,
			Content:     content,
			IsRead:      false,
		})
		if err != nil {
			return fmt.Errorf("failed to store notification: %w", err)
		}
		created = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("notification created", "notification_id", created.ID, "recipient_id", recipientID)
	return created, nil
}

// GetByID retrieves a single notification
func (s *notificationService) GetByID(ctx context.Context, id int64) (*Notification, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByUser retrieves all notifications for a user, read and unread
func (s *notificationService) ListByUser(ctx context.Context, userID int64) ([]*Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ListUnreadByUser retrieves the unread notifications for a user
func (s *notificationService) ListUnreadByUser(ctx context.Context, userID int64) ([]*Notification, error) {
	return s.repo.ListUnreadByUser(ctx, userID)
}

// MarkRead marks a single notification as read
func (s *notificationService) MarkRead(ctx context.Context, id int64) error {
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		return s.repo.MarkRead(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("notification marked as read", "notification_id", id)
	return nil
}

// MarkAllRead marks every currently-unread notification of the user as read.
// Notifications committed after the statement runs stay unread.
func (s *notificationService) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	var affected int64
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		n, err := s.repo.MarkAllRead(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to mark notifications as read: %w", err)
		}
		affected = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("marked notifications as read", "user_id", userID, "count", affected)
	return affected, nil
}

// Delete hard-deletes a single notification
func (s *notificationService) Delete(ctx context.Context, id int64) error {
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("notification deleted", "notification_id", id)
	return nil
}

// DeleteAllForUser hard-deletes every notification addressed to the user
func (s *notificationService) DeleteAllForUser(ctx context.Context, userID int64) (int64, error) {
	var deleted int64
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		n, err := s.repo.DeleteAllForUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to delete notifications: %w", err)
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("deleted all notifications", "user_id", userID, "count", deleted)
	return deleted, nil
}
