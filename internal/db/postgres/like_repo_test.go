package postgres

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Skillnet/internal/core/likes"
	"Skillnet/internal/core/notifications"
	"Skillnet/internal/core/posts"
	"Skillnet/internal/core/users"
)

func TestLikeRepo_DuplicateMapsToAlreadyLiked(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	userRepo := NewUserRepository(db)
	repo := NewLikeRepository(db)

	alice := createTestUser(t, userRepo, "alice")
	post, err := NewPostRepository(db).Create(ctx, &posts.Post{AuthorID: alice.ID, Description: "Hello"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &likes.Like{UserID: alice.ID, PostID: post.ID})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &likes.Like{UserID: alice.ID, PostID: post.ID})
	assert.ErrorIs(t, err, likes.ErrAlreadyLiked)
}

func TestLikeService_ConcurrentFirstLikes(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	userRepo := NewUserRepository(db)
	postRepo := NewPostRepository(db)
	notificationRepo := NewNotificationRepository(db)
	tx := NewTransactor(db)

	alice := createTestUser(t, userRepo, "alice")
	bob := createTestUser(t, userRepo, "bob")
	post, err := postRepo.Create(ctx, &posts.Post{AuthorID: alice.ID, Description: "Hello"})
	require.NoError(t, err)

	directory := users.NewUserService(userRepo)
	notifier := notifications.NewNotificationService(notificationRepo, directory, tx, nil)
	svc := likes.NewLikeService(NewLikeRepository(db), postRepo, directory, notifier, tx, nil)

	const workers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		ids     = map[int64]bool{}
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			like, ok, err := svc.Like(ctx, bob.ID, post.ID)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			ids[like.ID] = true
			if ok {
				created++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Len(t, ids, 1)

	inbox, err := notificationRepo.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, inbox, 1)
}
