package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Skillnet/internal/api/middleware"
	"Skillnet/internal/core/comments"
	"Skillnet/internal/core/feed"
	"Skillnet/internal/core/follows"
	"Skillnet/internal/core/likes"
	"Skillnet/internal/core/notifications"
	"Skillnet/internal/core/posts"
	"Skillnet/internal/core/users"
	"Skillnet/internal/db/memory"
)

const secret = "routes-test-secret"

// newTestServer wires every route against an in-memory store
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := memory.NewStore()
	userService := users.NewUserService(store.Users())
	notifier := notifications.NewNotificationService(store.Notifications(), userService, store, nil)
	auth := middleware.NewBearerAuthMiddleware(secret)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	r := chi.NewRouter()
	RegisterRequestMiddleware(r, auth, middleware.NewMemoryLimiter(ctx, 1000, time.Minute), false)
	RegisterUserRoutes(r, userService)
	RegisterFollowRoutes(r, follows.NewFollowService(store.Follows(), userService, notifier, store, nil), auth)
	RegisterPostRoutes(r, posts.NewPostService(store.Posts(), userService, nil), auth)
	RegisterLikeRoutes(r, likes.NewLikeService(store.Likes(), store.Posts(), userService, notifier, store, nil), auth)
	RegisterCommentRoutes(r, comments.NewCommentService(store.Comments(), store.Posts(), userService, notifier, store, nil), auth)
	RegisterFeedRoutes(r, feed.NewComposer(store.Follows(), store.Posts(), userService, feed.WithShuffler(feed.NewSeededShuffler(1))), auth)
	RegisterNotificationRoutes(r, notifier)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

type client struct {
	t     *testing.T
	base  string
	token string
}

func (c *client) do(method, path string, body interface{}, out interface{}) int {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequestWithContext(context.Background(), method, c.base+path, &buf)
	require.NoError(c.t, err)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer func() { _ = resp.Body.Close() }()

	if out != nil && resp.StatusCode < 300 && resp.StatusCode != http.StatusNoContent {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (c *client) as(userID int64) *client {
	token, err := middleware.IssueToken(secret, userID, time.Hour)
	require.NoError(c.t, err)
	return &client{t: c.t, base: c.base, token: token}
}

func register(t *testing.T, c *client, first, last, email string) int64 {
	t.Helper()
	var u users.User
	status := c.do(http.MethodPost, "/api/users", map[string]string{
		"firstName": first, "lastName": last, "email": email,
	}, &u)
	require.Equal(t, http.StatusCreated, status)
	return u.ID
}

func TestFollowLikeCommentFlow(t *testing.T) {
	srv := newTestServer(t)
	anon := &client{t: t, base: srv.URL}

	aliceID := register(t, anon, "Alice", "Smith", "alice@example.com")
	bobID := register(t, anon, "Bob", "Jones", "bob@example.com")
	alice, bob := anon.as(aliceID), anon.as(bobID)

	// Alice follows Bob, Bob gets exactly one unread notification
	require.Equal(t, http.StatusCreated, alice.do(http.MethodPost, "/api/follow", map[string]int64{"followeeId": bobID}, nil))
	require.Equal(t, http.StatusConflict, alice.do(http.MethodPost, "/api/follow", map[string]int64{"followeeId": bobID}, nil))

	var inbox struct {
		Notifications []notifications.Notification `json:"notifications"`
	}
	require.Equal(t, http.StatusOK, anon.do(http.MethodGet, "/api/notifications/user/"+itoa(bobID)+"/unread", nil, &inbox))
	require.Len(t, inbox.Notifications, 1)
	assert.Equal(t, "Alice Smith started following you", inbox.Notifications[0].Content)

	var status follows.FollowStatus
	require.Equal(t, http.StatusOK, anon.do(http.MethodGet, "/api/follow/check?followerId="+itoa(aliceID)+"&followingId="+itoa(bobID), nil, &status))
	assert.True(t, status.Following)

	// Bob posts, Alice likes twice and comments
	var post posts.Post
	require.Equal(t, http.StatusCreated, bob.do(http.MethodPost, "/api/posts", map[string]string{"description": "Hello"}, &post))
	require.Equal(t, http.StatusCreated, alice.do(http.MethodPost, "/api/likes/"+itoa(post.ID), nil, nil))
	require.Equal(t, http.StatusOK, alice.do(http.MethodPost, "/api/likes/"+itoa(post.ID), nil, nil))
	require.Equal(t, http.StatusCreated, alice.do(http.MethodPost, "/api/comments", map[string]interface{}{"postId": post.ID, "content": "Nice"}, nil))

	require.Equal(t, http.StatusOK, anon.do(http.MethodGet, "/api/notifications/user/"+itoa(bobID), nil, &inbox))
	require.Len(t, inbox.Notifications, 3)
	assert.Equal(t, "Alice Smith commented on your post: Hello", inbox.Notifications[0].Content)
	assert.Equal(t, "Alice Smith liked your post: Hello", inbox.Notifications[1].Content)

	var updated map[string]int64
	require.Equal(t, http.StatusOK, anon.do(http.MethodPut, "/api/notifications/user/"+itoa(bobID)+"/read-all", nil, &updated))
	assert.Equal(t, int64(3), updated["updated"])

	// Unlike keeps the notification
	require.Equal(t, http.StatusNoContent, alice.do(http.MethodDelete, "/api/likes/"+itoa(post.ID), nil, nil))
	require.Equal(t, http.StatusOK, anon.do(http.MethodGet, "/api/notifications/user/"+itoa(bobID), nil, &inbox))
	assert.Len(t, inbox.Notifications, 3)

	// Bob's feed holds his own post; Alice's post shows up once she publishes
	var bobFeed struct {
		Feed []posts.Post `json:"feed"`
	}
	require.Equal(t, http.StatusCreated, alice.do(http.MethodPost, "/api/posts", map[string]string{"description": "Mine"}, nil))
	require.Equal(t, http.StatusOK, bob.do(http.MethodGet, "/api/feed", nil, &bobFeed))
	assert.Len(t, bobFeed.Feed, 2)
}

func TestAuthRequired(t *testing.T) {
	srv := newTestServer(t)
	anon := &client{t: t, base: srv.URL}

	assert.Equal(t, http.StatusUnauthorized, anon.do(http.MethodPost, "/api/follow", map[string]int64{"followeeId": 1}, nil))
	assert.Equal(t, http.StatusUnauthorized, anon.do(http.MethodGet, "/api/feed", nil, nil))
	assert.Equal(t, http.StatusNotFound, anon.do(http.MethodGet, "/api/feed/42", nil, nil))
}

// recordingLimiter records the keys it is asked about
type recordingLimiter struct {
	next middleware.Limiter
	mu   sync.Mutex
	keys []string
}

func (l *recordingLimiter) Allow(ctx context.Context, clientID string) (bool, error) {
	l.mu.Lock()
	l.keys = append(l.keys, clientID)
	l.mu.Unlock()
	return l.next.Allow(ctx, clientID)
}

func TestRateLimit_KeysAuthenticatedCallersByUser(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := memory.NewStore()
	userService := users.NewUserService(store.Users())
	notifier := notifications.NewNotificationService(store.Notifications(), userService, store, nil)
	followService := follows.NewFollowService(store.Follows(), userService, notifier, store, nil)
	auth := middleware.NewBearerAuthMiddleware(secret)

	alice, err := userService.CreateUser(ctx, users.CreateUserRequest{FirstName: "Alice", LastName: "Smith", Email: "alice@example.com"})
	require.NoError(t, err)
	bob, err := userService.CreateUser(ctx, users.CreateUserRequest{FirstName: "Bob", LastName: "Jones", Email: "bob@example.com"})
	require.NoError(t, err)

	limiter := &recordingLimiter{next: middleware.NewMemoryLimiter(ctx, 1, time.Minute)}
	r := chi.NewRouter()
	RegisterRequestMiddleware(r, auth, limiter, false)
	RegisterFollowRoutes(r, followService, auth)

	token, err := middleware.IssueToken(secret, alice.ID, time.Hour)
	require.NoError(t, err)

	send := func(method, path, remoteAddr, token string, body string) int {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.RemoteAddr = remoteAddr
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	followBody := `{"followeeId":` + itoa(bob.ID) + `}`
	assert.Equal(t, http.StatusCreated, send(http.MethodPost, "/api/follow", "192.0.2.1:1234", token, followBody))
	// a new connection from another address is still the same user
	assert.Equal(t, http.StatusTooManyRequests, send(http.MethodPost, "/api/follow", "198.51.100.9:5678", token, followBody))

	// anonymous callers share one bucket per host, whatever the source port
	countPath := "/api/follow/" + itoa(bob.ID) + "/followers/count"
	assert.Equal(t, http.StatusOK, send(http.MethodGet, countPath, "203.0.113.5:1111", "", ""))
	assert.Equal(t, http.StatusTooManyRequests, send(http.MethodGet, countPath, "203.0.113.5:2222", "", ""))

	userKey := "user:" + itoa(alice.ID)
	assert.Equal(t, []string{userKey, userKey, "ip:203.0.113.5", "ip:203.0.113.5"}, limiter.keys)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
