package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Skillnet/internal/core/comments"
	"Skillnet/internal/core/follows"
	"Skillnet/internal/core/likes"
	"Skillnet/internal/core/notifications"
	"Skillnet/internal/core/posts"
	"Skillnet/internal/core/users"
)

func seedUser(t *testing.T, s *Store, first, email string) *users.User {
	t.Helper()
	u, err := s.Users().Create(context.Background(), &users.User{FirstName: first, LastName: "Test", Email: email})
	require.NoError(t, err)
	return u
}

func TestStore_UsersCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return fixed })

	alice := seedUser(t, s, "Alice", "alice@example.com")
	assert.Equal(t, int64(1), alice.ID)
	assert.Equal(t, fixed, alice.CreatedAt)

	got, err := s.Users().GetByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.FirstName)

	_, err = s.Users().Create(ctx, &users.User{FirstName: "Dup", Email: "ALICE@example.com"})
	assert.ErrorIs(t, err, users.ErrEmailTaken)

	_, err = s.Users().GetByID(ctx, 99)
	assert.True(t, users.IsNotFound(err))
}

func TestStore_InTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	alice := seedUser(t, s, "Alice", "alice@example.com")
	bob := seedUser(t, s, "Bob", "bob@example.com")

	boom := errors.New("boom")
	err := s.InTx(ctx, func(ctx context.Context) error {
		_, err := s.Follows().Create(ctx, &follows.Follow{FollowerID: alice.ID, FolloweeID: bob.ID})
		require.NoError(t, err)
		_, err = s.Notifications().Create(ctx, &notifications.Notification{RecipientID: bob.ID, Content: "x"})
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)

	edges, err := s.Follows().ListFollowers(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, edges)

	inbox, err := s.Notifications().ListByUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, inbox)

	// sequences roll back with the rows
	f, err := s.Follows().Create(ctx, &follows.Follow{FollowerID: alice.ID, FolloweeID: bob.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.ID)
}

func TestStore_InTxRollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	alice := seedUser(t, s, "Alice", "alice@example.com")

	assert.Panics(t, func() {
		_ = s.InTx(ctx, func(ctx context.Context) error {
			_, _ = s.Posts().Create(ctx, &posts.Post{AuthorID: alice.ID, Description: "doomed"})
			panic("kaboom")
		})
	})

	list, err := s.Posts().PostsByAuthor(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStore_NestedInTxJoinsOuter(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	alice := seedUser(t, s, "Alice", "alice@example.com")

	boom := errors.New("outer failed")
	err := s.InTx(ctx, func(ctx context.Context) error {
		innerErr := s.InTx(ctx, func(ctx context.Context) error {
			_, err := s.Posts().Create(ctx, &posts.Post{AuthorID: alice.ID, Description: "inner"})
			return err
		})
		require.NoError(t, innerErr)
		return boom
	})
	require.ErrorIs(t, err, boom)

	list, err := s.Posts().PostsByAuthor(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStore_InjectFault(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	alice := seedUser(t, s, "Alice", "alice@example.com")

	boom := errors.New("disk full")
	s.InjectFault("notifications.Create", boom)
	_, err := s.Notifications().Create(ctx, &notifications.Notification{RecipientID: alice.ID, Content: "x"})
	assert.ErrorIs(t, err, boom)

	s.InjectFault("notifications.Create", nil)
	_, err = s.Notifications().Create(ctx, &notifications.Notification{RecipientID: alice.ID, Content: "x"})
	assert.NoError(t, err)
}

func TestStore_ForeignKeys(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	alice := seedUser(t, s, "Alice", "alice@example.com")

	_, err := s.Follows().Create(ctx, &follows.Follow{FollowerID: alice.ID, FolloweeID: 42})
	assert.ErrorIs(t, err, users.ErrUserNotFound)

	_, err = s.Likes().Create(ctx, &likes.Like{UserID: alice.ID, PostID: 7})
	assert.ErrorIs(t, err, posts.ErrNotFound)

	post, err := s.Posts().Create(ctx, &posts.Post{AuthorID: alice.ID, Description: "Hello"})
	require.NoError(t, err)
	_, err = s.Likes().Create(ctx, &likes.Like{UserID: alice.ID, PostID: post.ID})
	require.NoError(t, err)
	_, err = s.Likes().Create(ctx, &likes.Like{UserID: alice.ID, PostID: post.ID})
	assert.ErrorIs(t, err, likes.ErrAlreadyLiked)

	_, err = s.Comments().Create(ctx, &comments.Comment{UserID: alice.ID, PostID: 7, Content: "hi"})
	assert.ErrorIs(t, err, posts.ErrNotFound)

	_, err = s.Notifications().Create(ctx, &notifications.Notification{RecipientID: 42, Content: "x"})
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestStore_FollowEdgesAllowDuplicates(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	alice := seedUser(t, s, "Alice", "alice@example.com")
	bob := seedUser(t, s, "Bob", "bob@example.com")

	for i := 0; i < 2; i++ {
		_, err := s.Follows().Create(ctx, &follows.Follow{FollowerID: alice.ID, FolloweeID: bob.ID})
		require.NoError(t, err)
	}

	n, err := s.Follows().CountFollowers(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	edge, err := s.Follows().GetByPair(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.NoError(t, s.Follows().Delete(ctx, edge.ID))
	assert.True(t, follows.IsNotFound(s.Follows().Delete(ctx, edge.ID)))

	n, err = s.Follows().CountFollowing(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStore_NotificationsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	bob := seedUser(t, s, "Bob", "bob@example.com")
	repo := s.Notifications()

	first, err := repo.Create(ctx, &notifications.Notification{RecipientID: bob.ID, Content: "first"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &notifications.Notification{RecipientID: bob.ID, Content: "second"})
	require.NoError(t, err)

	list, err := repo.ListByUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Content)
	assert.Equal(t, "first", list[1].Content)

	require.NoError(t, repo.MarkRead(ctx, first.ID))
	unread, err := repo.ListUnreadByUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "second", unread[0].Content)

	changed, err := repo.MarkAllRead(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	deleted, err := repo.DeleteAllForUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.True(t, notifications.IsNotFound(repo.Delete(ctx, first.ID)))
}

func TestStore_CommentUpdateStampsTime(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	edited := created.Add(time.Hour)
	s.SetClock(func() time.Time { return created })

	alice := seedUser(t, s, "Alice", "alice@example.com")
	post, err := s.Posts().Create(ctx, &posts.Post{AuthorID: alice.ID, Description: "Hello"})
	require.NoError(t, err)

	c, err := s.Comments().Create(ctx, &comments.Comment{UserID: alice.ID, PostID: post.ID, Content: "v1"})
	require.NoError(t, err)
	assert.Nil(t, c.UpdatedAt)

	s.SetClock(func() time.Time { return edited })
	updated, err := s.Comments().UpdateContent(ctx, c.ID, "v2")
	require.NoError(t, err)
	assert.Equal(t, "v2", updated.Content)
	require.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, edited, *updated.UpdatedAt)

	_, err = s.Comments().UpdateContent(ctx, 99, "nope")
	assert.True(t, comments.IsNotFound(err))
}

func TestStore_PostsByAuthorsGroups(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	alice := seedUser(t, s, "Alice", "alice@example.com")
	bob := seedUser(t, s, "Bob", "bob@example.com")
	carol := seedUser(t, s, "Carol", "carol@example.com")

	for _, p := range []posts.Post{
		{AuthorID: alice.ID, Description: "a1"},
		{AuthorID: bob.ID, Description: "b1"},
		{AuthorID: alice.ID, Description: "a2"},
		{AuthorID: carol.ID, Description: "c1"},
	} {
		_, err := s.Posts().Create(ctx, &p)
		require.NoError(t, err)
	}

	grouped, err := s.Posts().PostsByAuthors(ctx, []int64{alice.ID, bob.ID})
	require.NoError(t, err)
	require.Len(t, grouped, 2)
	require.Len(t, grouped[alice.ID], 2)
	assert.Equal(t, "a1", grouped[alice.ID][0].Description)
	assert.Equal(t, "a2", grouped[alice.ID][1].Description)
	assert.Len(t, grouped[bob.ID], 1)
	assert.NotContains(t, grouped, carol.ID)

	empty, err := s.Posts().PostsByAuthors(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
