package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Skillnet/internal/core/notifications"
	"Skillnet/internal/core/users"
)

type postgresNotificationRepo struct {
	db *sql.DB
}

// NewNotificationRepository creates a new PostgreSQL notification outbox repository
func NewNotificationRepository(db *sql.DB) notifications.Repository {
	return &postgresNotificationRepo{db: db}
}

const notificationColumns = `id, recipient_id, content, is_read, created_at`

// Create inserts an unread notification
func (r *postgresNotificationRepo) Create(ctx context.Context, n *notifications.Notification) (*notifications.Notification, error) {
	query := `
		INSERT INTO notification (recipient_id, content, is_read)
		VALUES ($1, $2, FALSE)
		RETURNING ` + notificationColumns

	created := &notifications.Notification{}
	err := conn(ctx, r.db).QueryRowContext(ctx, query, n.RecipientID, n.Content).
		Scan(&created.ID, &created.RecipientID, &created.Content, &created.IsRead, &created.CreatedAt)
	if err != nil {
		if _, ok := violation(err, codeForeignKeyViolation); ok {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to insert notification: %w", err)
	}

	return created, nil
}

func (r *postgresNotificationRepo) GetByID(ctx context.Context, id int64) (*notifications.Notification, error) {
	n := &notifications.Notification{}
	query := `SELECT ` + notificationColumns + ` FROM notification WHERE id = $1`

	err := conn(ctx, r.db).QueryRowContext(ctx, query, id).
		Scan(&n.ID, &n.RecipientID, &n.Content, &n.IsRead, &n.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, notifications.ErrNotificationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	return n, nil
}

// ListByUser returns the recipient's notifications newest first
func (r *postgresNotificationRepo) ListByUser(ctx context.Context, recipientID int64) ([]*notifications.Notification, error) {
	return r.list(ctx, `
		SELECT `+notificationColumns+`
		FROM notification
		WHERE recipient_id = $1
		ORDER BY id DESC`, recipientID)
}

// ListUnreadByUser returns the recipient's unread notifications newest first
func (r *postgresNotificationRepo) ListUnreadByUser(ctx context.Context, recipientID int64) ([]*notifications.Notification, error) {
	return r.list(ctx, `
		SELECT `+notificationColumns+`
		FROM notification
		WHERE recipient_id = $1 AND is_read = FALSE
		ORDER BY id DESC`, recipientID)
}

func (r *postgresNotificationRepo) MarkRead(ctx context.Context, id int64) error {
	result, err := conn(ctx, r.db).ExecContext(ctx, `UPDATE notification SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return requireAffected(result, notifications.ErrNotificationNotFound)
}

// MarkAllRead flips every notification that is unread when the statement runs.
// Rows inserted concurrently after the statement snapshot stay unread.
func (r *postgresNotificationRepo) MarkAllRead(ctx context.Context, recipientID int64) (int64, error) {
	result, err := conn(ctx, r.db).ExecContext(ctx,
		`UPDATE notification SET is_read = TRUE WHERE recipient_id = $1 AND is_read = FALSE`, recipientID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark all notifications read: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check update result: %w", err)
	}
	return rowsAffected, nil
}

func (r *postgresNotificationRepo) Delete(ctx context.Context, id int64) error {
	result, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM notification WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return requireAffected(result, notifications.ErrNotificationNotFound)
}

func (r *postgresNotificationRepo) DeleteAllForUser(ctx context.Context, recipientID int64) (int64, error) {
	result, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM notification WHERE recipient_id = $1`, recipientID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete notifications: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check delete result: %w", err)
	}
	return rowsAffected, nil
}

func (r *postgresNotificationRepo) list(ctx context.Context, query string, recipientID int64) ([]*notifications.Notification, error) {
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := []*notifications.Notification{}
	for rows.Next() {
		n := &notifications.Notification{}
		if err := rows.Scan(&n.ID, &n.RecipientID, &n.Content, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}

	return result, nil
}

// requireAffected maps a zero-row statement to notFound
func requireAffected(result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check result: %w", err)
	}
	if rowsAffected == 0 {
		return notFound
	}
	return nil
}
