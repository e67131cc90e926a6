package follows_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Skillnet/internal/core/follows"
	"Skillnet/internal/core/notifications"
	"Skillnet/internal/core/users"
	"Skillnet/internal/db/memory"
)

type graphFixture struct {
	store         *memory.Store
	follows       follows.Service
	notifications notifications.Service
}

func newGraphFixture() *graphFixture {
	store := memory.NewStore()
	directory := users.NewUserService(store.Users())
	notifier := notifications.NewNotificationService(store.Notifications(), directory, store, nil)
	return &graphFixture{
		store:         store,
		follows:       follows.NewFollowService(store.Follows(), directory, notifier, store, nil),
		notifications: notifier,
	}
}

func (f *graphFixture) user(t *testing.T, first, last, email string) *users.User {
	t.Helper()
	u, err := f.store.Users().Create(context.Background(), &users.User{FirstName: first, LastName: last, Email: email})
	require.NoError(t, err)
	return u
}

func TestFollow_EmitsNotification(t *testing.T) {
	ctx := context.Background()
	f := newGraphFixture()
	alice := f.user(t, "Alice", "Smith", "alice@example.com")
	bob := f.user(t, "Bob", "Jones", "bob@example.com")

	edge, err := f.follows.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, edge.FollowerID)
	assert.Equal(t, bob.ID, edge.FolloweeID)

	following, err := f.follows.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	reverse, err := f.follows.IsFollowing(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, reverse)

	unread, err := f.notifications.ListUnreadByUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "Alice Smith started following you", unread[0].Content)
	assert.False(t, unread[0].IsRead)

	aliceInbox, err := f.notifications.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, aliceInbox)
}

func TestFollow_Duplicate(t *testing.T) {
	ctx := context.Background()
	f := newGraphFixture()
	alice := f.user(t, "Alice", "Smith", "alice@example.com")
	bob := f.user(t, "Bob", "Jones", "bob@example.com")

	_, err := f.follows.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)

	_, err = f.follows.Follow(ctx, alice.ID, bob.ID)
	assert.ErrorIs(t, err, follows.ErrAlreadyFollowing)
	assert.True(t, follows.IsConflict(err))

	count, err := f.follows.FollowerCount(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	inbox, err := f.notifications.ListByUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, inbox, 1)
}

func TestFollow_UnknownUsers(t *testing.T) {
	ctx := context.Background()
	f := newGraphFixture()
	alice := f.user(t, "Alice", "Smith", "alice@example.com")

	tests := []struct {
		name       string
		followerID int64
		followeeID int64
	}{
		{"unknown followee", alice.ID, 999},
		{"unknown follower", 999, alice.ID},
		{"zero follower", 0, alice.ID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.follows.Follow(ctx, tt.followerID, tt.followeeID)
			assert.True(t, users.IsNotFound(err), "got %v", err)
		})
	}

	count, err := f.follows.FollowingCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	inbox, err := f.notifications.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, inbox)
}

func TestFollow_SelfFollowAllowed(t *testing.T) {
	ctx := context.Background()
	f := newGraphFixture()
	alice := f.user(t, "Alice", "Smith", "alice@example.com")

	_, err := f.follows.Follow(ctx, alice.ID, alice.ID)
	require.NoError(t, err)

	inbox, err := f.notifications.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "Alice Smith started following you", inbox[0].Content)
}

func TestFollow_NotificationFailureRollsBackEdge(t *testing.T) {
	ctx := context.Background()
	f := newGraphFixture()
	alice := f.user(t, "Alice", "Smith", "alice@example.com")
	bob := f.user(t, "Bob", "Jones", "bob@example.com")

	boom := errors.New("outbox unavailable")
	f.store.InjectFault("notifications.Create", boom)

	_, err := f.follows.Follow(ctx, alice.ID, bob.ID)
	require.ErrorIs(t, err, boom)

	following, err := f.follows.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)

	f.store.InjectFault("notifications.Create", nil)
	_, err = f.follows.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
}

func TestUnfollow(t *testing.T) {
	ctx := context.Background()
	f := newGraphFixture()
	alice := f.user(t, "Alice", "Smith", "alice@example.com")
	bob := f.user(t, "Bob", "Jones", "bob@example.com")

	err := f.follows.Unfollow(ctx, alice.ID, bob.ID)
	assert.ErrorIs(t, err, follows.ErrFollowNotFound)

	_, err = f.follows.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, f.follows.Unfollow(ctx, alice.ID, bob.ID))

	following, err := f.follows.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)

	// the original notification stays in the outbox
	inbox, err := f.notifications.ListByUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, inbox, 1)

	// re-following after an unfollow is allowed and notifies again
	_, err = f.follows.Follow(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	inbox, err = f.notifications.ListByUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.Len(t, inbox, 2)
}

func TestCountsAndLists(t *testing.T) {
	ctx := context.Background()
	f := newGraphFixture()
	alice := f.user(t, "Alice", "Smith", "alice@example.com")
	bob := f.user(t, "Bob", "Jones", "bob@example.com")
	carol := f.user(t, "Carol", "White", "carol@example.com")

	for _, pair := range [][2]int64{{alice.ID, carol.ID}, {bob.ID, carol.ID}, {carol.ID, alice.ID}} {
		_, err := f.follows.Follow(ctx, pair[0], pair[1])
		require.NoError(t, err)
	}

	followers, err := f.follows.FollowerCount(ctx, carol.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, followers)

	following, err := f.follows.FollowingCount(ctx, carol.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, following)

	edges, err := f.follows.FollowersOf(ctx, carol.ID)
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, alice.ID, edges[0].FollowerID)
	assert.Equal(t, bob.ID, edges[1].FollowerID)

	out, err := f.follows.FollowingOf(ctx, carol.ID)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, alice.ID, out[0].FolloweeID)

	_, err = f.follows.FollowerCount(ctx, 999)
	assert.True(t, users.IsNotFound(err))
}

func TestFollow_ConcurrentDuplicatesCreateOneEdge(t *testing.T) {
	ctx := context.Background()
	f := newGraphFixture()
	alice := f.user(t, "Alice", "Smith", "alice@example.com")
	bob := f.user(t, "Bob", "Jones", "bob@example.com")

	var wg sync.WaitGroup
	errs := make([]error, 6)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.follows.Follow(ctx, alice.ID, bob.ID)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, follows.ErrAlreadyFollowing)
	}
	assert.Equal(t, 1, succeeded)

	count, err := f.follows.FollowerCount(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
