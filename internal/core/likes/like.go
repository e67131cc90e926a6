package likes

import "time"

// Like records that a user liked a post. At most one per (UserID, PostID).
type Like struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	ID        int64     `json:"likeId" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	PostID    int64     `json:"postId" db:"post_id"`
}
