// Package feed composes a user's activity feed from the follow graph and the content store.
//
// The feed is the user's own posts plus the posts of the users on the other end
// of the user's follow edges. Which end is selected by Direction:
//
//   - DirectionFollowers (default): for every edge whose followee is the user,
//     include the posts of that edge's follower. Viewers see their followers'
//     posts.
//   - DirectionFollowees: for every edge whose follower is the user, include
//     the posts of that edge's followee. Opt-in only.
//
// The aggregated slice is shuffled before it is returned. There is no ranking,
// pagination or de-duplication; a user who follows themselves sees their own
// posts twice.
package feed

import (
	"context"
	"fmt"
	"log/slog"

	"Skillnet/internal/core/follows"
	"Skillnet/internal/core/posts"
	"Skillnet/internal/core/users"
)

// Direction selects which end of the user's follow edges contributes posts
type Direction string

const (
	DirectionFollowers Direction = "followers"
	DirectionFollowees Direction = "followees"
)

// ParseDirection validates a configured direction. Empty means DirectionFollowers.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case "", DirectionFollowers:
		return DirectionFollowers, nil
	case DirectionFollowees:
		return DirectionFollowees, nil
	default:
		return "", fmt.Errorf("unknown feed direction %q: must be %q or %q", s, DirectionFollowers, DirectionFollowees)
	}
}

// Service defines the feed read path
type Service interface {
	Compose(ctx context.Context, userID int64) ([]*posts.Post, error)
}

// Composer builds feeds. It is safe for concurrent use when its Shuffler is.
type Composer struct {
	graph     follows.Repository
	posts     posts.Store
	directory users.Directory
	shuffler  Shuffler
	logger    *slog.Logger
	direction Direction
}

// Option configures a Composer
type Option func(*Composer)

// WithShuffler overrides the production shuffler, e.g. with NewSeededShuffler in tests
func WithShuffler(s Shuffler) Option {
	return func(c *Composer) { c.shuffler = s }
}

// WithDirection selects the edge direction
func WithDirection(d Direction) Option {
	return func(c *Composer) { c.direction = d }
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(c *Composer) { c.logger = l }
}

// NewComposer creates a feed composer
func NewComposer(graph follows.Repository, postStore posts.Store, directory users.Directory, opts ...Option) *Composer {
	c := &Composer{
		graph:     graph,
		posts:     postStore,
		directory: directory,
		shuffler:  NewRandomShuffler(),
		logger:    slog.Default(),
		direction: DirectionFollowers,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose returns the user's feed in shuffled order
func (c *Composer) Compose(ctx context.Context, userID int64) ([]*posts.Post, error) {
	if _, err := c.directory.Resolve(ctx, userID); err != nil {
		return nil, err
	}

	authors, err := c.participants(ctx, userID)
	if err != nil {
		return nil, err
	}

	byAuthor, err := c.posts.PostsByAuthors(ctx, authors)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts for %d authors: %w", len(authors), err)
	}

	// an author reached through several edges contributes once per edge
	var feed []*posts.Post
	for _, authorID := range authors {
		feed = append(feed, byAuthor[authorID]...)
	}

	c.shuffler.Shuffle(len(feed), func(i, j int) {
		feed[i], feed[j] = feed[j], feed[i]
	})

	c.logger.Info("feed composed", "user_id", userID, "authors", len(authors), "posts", len(feed), "direction", string(c.direction))
	if feed == nil {
		feed = []*posts.Post{}
	}
	return feed, nil
}

// participants returns the user followed by one author id per edge, in edge order
func (c *Composer) participants(ctx context.Context, userID int64) ([]int64, error) {
	authors := []int64{userID}

	switch c.direction {
	case DirectionFollowees:
		edges, err := c.graph.ListFollowing(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list following: %w", err)
		}
		for _, e := range edges {
			authors = append(authors, e.FolloweeID)
		}
	default:
		edges, err := c.graph.ListFollowers(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list followers: %w", err)
		}
		for _, e := range edges {
			authors = append(authors, e.FollowerID)
		}
	}
	return authors, nil
}
