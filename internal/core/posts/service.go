package posts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"Skillnet/internal/core/users"
)

const maxDescriptionLength = 5000

type postService struct {
	repo      Repository
	directory users.Directory
	logger    *slog.Logger
}

// NewPostService creates a new post service
func NewPostService(repo Repository, directory users.Directory, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		repo:      repo,
		directory: directory,
		logger:    logger,
	}
}

// CreatePost stores a new post for an existing author
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	req.Description = strings.TrimSpace(req.Description)
	if req.Description == "" {
		return nil, NewValidationError("description", "required")
	}
	if utf8.RuneCountInString(req.Description) > maxDescriptionLength {
		return nil, NewValidationError("description", fmt.Sprintf("must not exceed %d characters", maxDescriptionLength))
	}

	if _, err := s.directory.Resolve(ctx, req.AuthorID); err != nil {
		return nil, err
	}

	post, err := s.repo.Create(ctx, &Post{
		AuthorID:    req.AuthorID,
		Description: req.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("post created", "post_id", post.ID, "author_id", post.AuthorID)
	return post, nil
}

// GetPost retrieves a post by ID
func (s *postService) GetPost(ctx context.Context, id int64) (*Post, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByAuthor retrieves every post by the author
func (s *postService) ListByAuthor(ctx context.Context, authorID int64) ([]*Post, error) {
	if _, err := s.directory.Resolve(ctx, authorID); err != nil {
		return nil, err
	}
	return s.repo.PostsByAuthor(ctx, authorID)
}
