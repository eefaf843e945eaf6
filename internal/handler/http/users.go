package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-chi/chi/v5"
)

// userPosts serves an author's public profile with their published posts.
func (h *Handler) userPosts(w http.ResponseWriter, r *http.Request) {
	data, err := h.services.PostService.ListUserPosts(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, r, err, opUserPosts)
		return
	}

	utils.WriteData(w, data, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.UpdateProfileRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err, opUpdateProfile)
		return
	}

	userID, _ := utils.GetUserIDFromContext(ctx)
	user, err := h.services.UserService.UpdateProfile(ctx, userID, request)
	if err != nil {
		writeError(w, r, err, opUpdateProfile)
		return
	}

	utils.WriteData(w, models.UserData{User: user}, http.StatusOK)
}
