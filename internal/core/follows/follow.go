package follows

import "time"

// Follow is a directed edge: FollowerID observes FolloweeID.
// At most one edge exists per (FollowerID, FolloweeID) pair. The store has no
// unique index for it; the service enforces it with a lookup before insert.
type Follow struct {
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	ID         int64     `json:"followId" db:"id"`
	FollowerID int64     `json:"followerId" db:"follower_id"`
	FolloweeID int64     `json:"followeeId" db:"followee_id"`
}

// FollowRequest represents input for creating a follow edge
type FollowRequest struct {
	FolloweeID int64 `json:"followeeId"`
	FollowerID int64 `json:"-"` // Extracted from auth, not from the body
}

// FollowStatus reports whether an edge exists
type FollowStatus struct {
	FollowerID int64 `json:"followerId"`
	FolloweeID int64 `json:"followingId"`
	Following  bool  `json:"following"`
}
