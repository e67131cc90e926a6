package notifications

import (
	"fmt"
	"time"
)

// Notification is a single entry in a user's outbox.
// Content is rendered when the triggering event happens and is never re-rendered.
type Notification struct {
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	Content     string    `json:"content" db:"content"`
	ID          int64     `json:"notificationId" db:"id"`
	RecipientID int64     `json:"recipientId" db:"recipient_id"`
	IsRead      bool      `json:"isRead" db:"is_read"`
}

// FollowedContent renders the notification sent to a newly followed user
func FollowedContent(followerName string) string {
	return followerName + " started following you"
}

// LikedContent renders the notification sent to a post author on a new like
func LikedContent(actorName, postDescription string) string {
	return fmt.Sprintf("%s liked your post: %s", actorName, postDescription)
}

// CommentedContent renders the notification sent to a post author on a new comment
func CommentedContent(actorName, postDescription string) string {
	return fmt.Sprintf("%s commented on your post: %s", actorName, postDescription)
}
