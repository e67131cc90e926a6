package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Skillnet/internal/core/comments"
	"Skillnet/internal/core/follows"
	"Skillnet/internal/core/likes"
	"Skillnet/internal/core/notifications"
	"Skillnet/internal/core/posts"
	"Skillnet/internal/core/users"
)

// WriteError writes a standardized JSON error response
func WriteError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   errorType,
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// WriteJSON writes body as a JSON response
func WriteJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// PathID parses a positive int64 path parameter. On failure it writes a 400
// and returns false.
func PathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		WriteError(w, http.StatusBadRequest, "InvalidRequest", name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

// WriteServiceError maps domain errors from any package to an HTTP response.
// Unknown errors are logged under prefix and reported as 500 without details.
func WriteServiceError(w http.ResponseWriter, prefix string, err error) {
	switch {
	case users.IsNotFound(err):
		WriteError(w, http.StatusNotFound, "UserNotFound", "User not found")
	case posts.IsNotFound(err):
		WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	case follows.IsNotFound(err):
		WriteError(w, http.StatusNotFound, "FollowNotFound", "Follow not found")
	case likes.IsNotFound(err):
		WriteError(w, http.StatusNotFound, "LikeNotFound", "Like not found")
	case comments.IsNotFound(err):
		WriteError(w, http.StatusNotFound, "CommentNotFound", "Comment not found")
	case notifications.IsNotFound(err):
		WriteError(w, http.StatusNotFound, "NotificationNotFound", "Notification not found")

	case follows.IsConflict(err):
		WriteError(w, http.StatusConflict, "AlreadyFollowing", "Already following this user")
	case users.IsConflict(err):
		WriteError(w, http.StatusConflict, "EmailTaken", "Email is already registered")

	case users.IsValidationError(err),
		posts.IsValidationError(err),
		comments.IsValidationError(err),
		notifications.IsValidationError(err):
		WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	default:
		// Don't leak internal error details to clients
		log.Printf("[%s] unexpected error: %v", prefix, err)
		WriteError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
	}
}
