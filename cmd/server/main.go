package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"Skillnet/internal/api/middleware"
	"Skillnet/internal/api/routes"
	"Skillnet/internal/config"
	"Skillnet/internal/core/comments"
	"Skillnet/internal/core/feed"
	"Skillnet/internal/core/follows"
	"Skillnet/internal/core/likes"
	"Skillnet/internal/core/notifications"
	"Skillnet/internal/core/posts"
	"Skillnet/internal/core/txn"
	"Skillnet/internal/core/users"
	"Skillnet/internal/db/memory"
	"Skillnet/internal/db/migrations"
	postgresRepo "Skillnet/internal/db/postgres"
)

// storage is the set of repositories every service is built from
type storage struct {
	users         users.Repository
	posts         posts.Repository
	follows       follows.Repository
	notifications notifications.Repository
	likes         likes.Repository
	comments      comments.Repository
	tx            txn.Transactor
	close         func() error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	direction, err := feed.ParseDirection(cfg.FeedDirection)
	if err != nil {
		log.Fatalf("Invalid FEED_DIRECTION: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer func() {
		if closeErr := store.close(); closeErr != nil {
			log.Printf("Failed to close storage: %v", closeErr)
		}
	}()

	limiter, closeLimiter, err := newLimiter(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to set up rate limiter: %v", err)
	}
	defer closeLimiter()

	// Services
	userService := users.NewUserService(store.users)
	notificationService := notifications.NewNotificationService(store.notifications, userService, store.tx, logger.With("component", "notifications"))
	postService := posts.NewPostService(store.posts, userService, logger.With("component", "posts"))
	followService := follows.NewFollowService(store.follows, userService, notificationService, store.tx, logger.With("component", "follows"))
	likeService := likes.NewLikeService(store.likes, store.posts, userService, notificationService, store.tx, logger.With("component", "likes"))
	commentService := comments.NewCommentService(store.comments, store.posts, userService, notificationService, store.tx, logger.With("component", "comments"))
	feedService := feed.NewComposer(store.follows, store.posts, userService,
		feed.WithDirection(direction),
		feed.WithLogger(logger.With("component", "feed")),
	)

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Timeout(cfg.RequestTimeout))

	authMiddleware := middleware.NewBearerAuthMiddleware(cfg.JWTSecret)
	routes.RegisterRequestMiddleware(r, authMiddleware, limiter, cfg.TrustProxyHeaders)

	routes.RegisterUserRoutes(r, userService)
	routes.RegisterFollowRoutes(r, followService, authMiddleware)
	routes.RegisterPostRoutes(r, postService, authMiddleware)
	routes.RegisterLikeRoutes(r, likeService, authMiddleware)
	routes.RegisterCommentRoutes(r, commentService, authMiddleware)
	routes.RegisterFeedRoutes(r, feedService, authMiddleware)
	routes.RegisterNotificationRoutes(r, notificationService)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Printf("Failed to write health response: %v", err)
		}
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Graceful shutdown failed: %v", err)
		}
	}()

	fmt.Printf("Skillnet AppView starting on port %s (storage=%s, feed=%s)\n", cfg.Port, cfg.StorageDriver, direction)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server failed: %v", err)
	}
}

func openStorage(cfg config.Config) (*storage, error) {
	if cfg.StorageDriver == config.DriverMemory {
		log.Println("Using in-memory storage; data is lost on restart")
		store := memory.NewStore()
		return &storage{
			users:         store.Users(),
			posts:         store.Posts(),
			follows:       store.Follows(),
			notifications: store.Notifications(),
			likes:         store.Likes(),
			comments:      store.Comments(),
			tx:            store,
			close:         func() error { return nil },
		}, nil
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Println("Connected to AppView database")

	if cfg.MigrationsEnabled {
		goose.SetBaseFS(migrations.FS)
		if err := goose.SetDialect("postgres"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set goose dialect: %w", err)
		}
		if err := goose.Up(db, "."); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Println("Migrations completed successfully")
	}

	return &storage{
		users:         postgresRepo.NewUserRepository(db),
		posts:         postgresRepo.NewPostRepository(db),
		follows:       postgresRepo.NewFollowRepository(db),
		notifications: postgresRepo.NewNotificationRepository(db),
		likes:         postgresRepo.NewLikeRepository(db),
		comments:      postgresRepo.NewCommentRepository(db),
		tx:            postgresRepo.NewTransactor(db),
		close:         db.Close,
	}, nil
}

// newLimiter shares counters through Redis when REDIS_URL is set and keeps
// them in process otherwise
func newLimiter(ctx context.Context, cfg config.Config) (middleware.Limiter, func(), error) {
	if cfg.RedisURL == "" {
		return middleware.NewMemoryLimiter(ctx, cfg.RateLimitRequests, cfg.RateLimitWindow), func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	log.Println("Rate limiting through Redis")

	closeFn := func() {
		if err := rdb.Close(); err != nil {
			log.Printf("Failed to close redis client: %v", err)
		}
	}
	return middleware.NewRedisLimiter(rdb, "ratelimit:", cfg.RateLimitRequests, cfg.RateLimitWindow), closeFn, nil
}
