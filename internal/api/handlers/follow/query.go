package follow

import (
	"context"
	"net/http"
	"strconv"

	"Skillnet/internal/api/handlers"
	"Skillnet/internal/core/follows"
)

// HandleCheck reports whether followerId follows followingId
// GET /api/follow/check?followerId=1&followingId=2
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	followerID, err := strconv.ParseInt(r.URL.Query().Get("followerId"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "followerId must be an integer")
		return
	}
	followeeID, err := strconv.ParseInt(r.URL.Query().Get("followingId"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "followingId must be an integer")
		return
	}

	following, err := h.service.IsFollowing(r.Context(), followerID, followeeID)
	if err != nil {
		handlers.WriteServiceError(w, "FOLLOW", err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, follows.FollowStatus{
		FollowerID: followerID,
		FolloweeID: followeeID,
		Following:  following,
	})
}

// HandleFollowerCount returns how many users follow userId
// GET /api/follow/{userId}/followers/count
func (h *Handler) HandleFollowerCount(w http.ResponseWriter, r *http.Request) {
	h.writeCount(w, r, h.service.FollowerCount)
}

// HandleFollowingCount returns how many users userId follows
// GET /api/follow/{userId}/following/count
func (h *Handler) HandleFollowingCount(w http.ResponseWriter, r *http.Request) {
	h.writeCount(w, r, h.service.FollowingCount)
}

// HandleFollowers lists the edges pointing at userId
// GET /api/follow/{userId}/followers
func (h *Handler) HandleFollowers(w http.ResponseWriter, r *http.Request) {
	h.writeEdges(w, r, h.service.FollowersOf)
}

// HandleFollowing lists the edges leaving userId
// GET /api/follow/{userId}/following
func (h *Handler) HandleFollowing(w http.ResponseWriter, r *http.Request) {
	h.writeEdges(w, r, h.service.FollowingOf)
}

type countFunc func(ctx context.Context, userID int64) (int, error)

func (h *Handler) writeCount(w http.ResponseWriter, r *http.Request, count countFunc) {
	userID, ok := handlers.PathID(w, r, "userId")
	if !ok {
		return
	}

	n, err := count(r.Context(), userID)
	if err != nil {
		handlers.WriteServiceError(w, "FOLLOW", err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"userId": userID,
		"count":  n,
	})
}

type listFunc func(ctx context.Context, userID int64) ([]*follows.Follow, error)

func (h *Handler) writeEdges(w http.ResponseWriter, r *http.Request, list listFunc) {
	userID, ok := handlers.PathID(w, r, "userId")
	if !ok {
		return
	}

	edges, err := list(r.Context(), userID)
	if err != nil {
		handlers.WriteServiceError(w, "FOLLOW", err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"follows": edges,
	})
}
