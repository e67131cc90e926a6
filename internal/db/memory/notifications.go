package memory

import (
	"context"

	"Skillnet/internal/core/notifications"
	"Skillnet/internal/core/users"
)

type notificationRepo struct{ s *Store }

func (r *notificationRepo) Create(ctx context.Context, n *notifications.Notification) (*notifications.Notification, error) {
	defer r.s.lock(ctx)()
	if err := r.s.fault("notifications.Create"); err != nil {
		return nil, err
	}
	if !r.s.userExists(n.RecipientID) {
		return nil, users.ErrUserNotFound
	}

	row := *n
	row.ID = r.s.nextID("notifications")
	row.CreatedAt = r.s.now()
	r.s.state.notifications = append(r.s.state.notifications, row)
	return &row, nil
}

func (r *notificationRepo) GetByID(ctx context.Context, id int64) (*notifications.Notification, error) {
	defer r.s.lock(ctx)()
	if err := r.s.fault("notifications.GetByID"); err != nil {
		return nil, err
	}

	if i := r.s.notificationIndex(id); i >= 0 {
		row := r.s.state.notifications[i]
		return &row, nil
	}
	return nil, notifications.ErrNotificationNotFound
}

func (r *notificationRepo) ListByUser(ctx context.Context, recipientID int64) ([]*notifications.Notification, error) {
	return r.list(ctx, "notifications.ListByUser", func(n notifications.Notification) bool {
		return n.RecipientID == recipientID
	})
}

func (r *notificationRepo) ListUnreadByUser(ctx context.Context, recipientID int64) ([]*notifications.Notification, error) {
	return r.list(ctx, "notifications.ListUnreadByUser", func(n notifications.Notification) bool {
		return n.RecipientID == recipientID && !n.IsRead
	})
}

func (r *notificationRepo) MarkRead(ctx context.Context, id int64) error {
	defer r.s.lock(ctx)()
	if err := r.s.fault("notifications.MarkRead"); err != nil {
		return err
	}

	i := r.s.notificationIndex(id)
	if i < 0 {
		return notifications.ErrNotificationNotFound
	}
	r.s.state.notifications[i].IsRead = true
	return nil
}

func (r *notificationRepo) MarkAllRead(ctx context.Context, recipientID int64) (int64, error) {
	defer r.s.lock(ctx)()
	if err := r.s.fault("notifications.MarkAllRead"); err != nil {
		return 0, err
	}

	var affected int64
	for i := range r.s.state.notifications {
		n := &r.s.state.notifications[i]
		if n.RecipientID == recipientID && !n.IsRead {
			n.IsRead = true
			affected++
		}
	}
	return affected, nil
}

func (r *notificationRepo) Delete(ctx context.Context, id int64) error {
	defer r.s.lock(ctx)()
	if err := r.s.fault("notifications.Delete"); err != nil {
		return err
	}

	i := r.s.notificationIndex(id)
	if i < 0 {
		return notifications.ErrNotificationNotFound
	}
	all := r.s.state.notifications
	r.s.state.notifications = append(all[:i:i], all[i+1:]...)
	return nil
}

func (r *notificationRepo) DeleteAllForUser(ctx context.Context, recipientID int64) (int64, error) {
	defer r.s.lock(ctx)()
	if err := r.s.fault("notifications.DeleteAllForUser"); err != nil {
		return 0, err
	}

	kept := r.s.state.notifications[:0:0]
	var deleted int64
	for _, n := range r.s.state.notifications {
		if n.RecipientID == recipientID {
			deleted++
			continue
		}
		kept = append(kept, n)
	}
	r.s.state.notifications = kept
	return deleted, nil
}

// list returns matches newest first
func (r *notificationRepo) list(ctx context.Context, op string, match func(notifications.Notification) bool) ([]*notifications.Notification, error) {
	defer r.s.lock(ctx)()
	if err := r.s.fault(op); err != nil {
		return nil, err
	}

	result := []*notifications.Notification{}
	all := r.s.state.notifications
	for i := len(all) - 1; i >= 0; i-- {
		if match(all[i]) {
			row := all[i]
			result = append(result, &row)
		}
	}
	return result, nil
}

// notificationIndex must be called with the lock held
func (s *Store) notificationIndex(id int64) int {
	for i, n := range s.state.notifications {
		if n.ID == id {
			return i
		}
	}
	return -1
}
