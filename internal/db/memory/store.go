// Package memory is an in-process implementation of every repository used by
// the social graph. It backs local development (STORAGE_DRIVER=memory) and the
// service tests.
//
// Transactions are serializable: InTx holds the store lock for the whole
// callback and restores a snapshot of all tables when the callback fails or
// panics. Repository calls made outside InTx lock per call.
package memory

import (
	"context"
	"sync"
	"time"

	"Skillnet/internal/core/comments"
	"Skillnet/internal/core/follows"
	"Skillnet/internal/core/likes"
	"Skillnet/internal/core/notifications"
	"Skillnet/internal/core/posts"
	"Skillnet/internal/core/users"
)

type txKey struct{}

// Store holds all tables
type Store struct {
	now    func() time.Time
	faults map[string]error
	state  *state
	mu     sync.Mutex
}

type state struct {
	seq           map[string]int64
	users         []users.User
	posts         []posts.Post
	follows       []follows.Follow
	notifications []notifications.Notification
	likes         []likes.Like
	comments      []comments.Comment
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		now:    time.Now,
		faults: make(map[string]error),
		state:  &state{seq: make(map[string]int64)},
	}
}

// SetClock replaces the time source used for created_at stamps
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// InjectFault makes every subsequent call to op fail with err until cleared
// with a nil err. Ops are named "<table>.<Method>", e.g. "notifications.Create".
func (s *Store) InjectFault(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.faults, op)
		return
	}
	s.faults[op] = err
}

// InTx runs fn with the store locked and rolls every table back if fn fails
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	defer func() {
		if r := recover(); r != nil {
			s.state = snapshot
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}

// Users returns the users repository
func (s *Store) Users() users.Repository { return &userRepo{s: s} }

// Posts returns the posts repository
func (s *Store) Posts() posts.Repository { return &postRepo{s: s} }

// Follows returns the follow edge repository
func (s *Store) Follows() follows.Repository { return &followRepo{s: s} }

// Notifications returns the notification outbox repository
func (s *Store) Notifications() notifications.Repository { return &notificationRepo{s: s} }

// Likes returns the likes repository
func (s *Store) Likes() likes.Repository { return &likeRepo{s: s} }

// Comments returns the comments repository
func (s *Store) Comments() comments.Repository { return &commentRepo{s: s} }

func (s *Store) inTx(ctx context.Context) bool {
	owner, ok := ctx.Value(txKey{}).(*Store)
	return ok && owner == s
}

// lock acquires the store lock unless ctx already carries this store's transaction
func (s *Store) lock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// fault must be called with the lock held
func (s *Store) fault(op string) error {
	return s.faults[op]
}

// nextID must be called with the lock held
func (s *Store) nextID(table string) int64 {
	s.state.seq[table]++
	return s.state.seq[table]
}

func (st *state) clone() *state {
	seq := make(map[string]int64, len(st.seq))
	for k, v := range st.seq {
		seq[k] = v
	}
	c := &state{
		seq:           seq,
		users:         append([]users.User(nil), st.users...),
		posts:         append([]posts.Post(nil), st.posts...),
		follows:       append([]follows.Follow(nil), st.follows...),
		notifications: append([]notifications.Notification(nil), st.notifications...),
		likes:         append([]likes.Like(nil), st.likes...),
		comments:      make([]comments.Comment, len(st.comments)),
	}
	for i, cm := range st.comments {
		if cm.UpdatedAt != nil {
			t := *cm.UpdatedAt
			cm.UpdatedAt = &t
		}
		c.comments[i] = cm
	}
	return c
}
