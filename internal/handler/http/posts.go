package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-chi/chi/v5"
)

// listPosts serves GET /api/posts with an optional userId filter.
func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	viewerID, _ := utils.GetUserIDFromContext(ctx)
	posts, err := h.services.PostService.ListPosts(ctx, r.URL.Query().Get("userId"), viewerID)
	if err != nil {
		writeError(w, r, err, opListPosts)
		return
	}

	utils.WriteData(w, models.PostsData{Posts: posts}, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.CreatePostRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err, opCreatePost)
		return
	}

	actorID, _ := utils.GetUserIDFromContext(ctx)
	post, err := h.services.PostService.CreatePost(ctx, actorID, request)
	if err != nil {
		writeError(w, r, err, opCreatePost)
		return
	}

	utils.WriteData(w, models.PostData{Post: post}, http.StatusCreated)
}

// getPost serves a single post and counts the read.
func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.services.PostService.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, opGetPost)
		return
	}

	utils.WriteData(w, models.PostData{Post: post}, http.StatusOK)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.UpdatePostRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err, opUpdatePost)
		return
	}

	actorID, _ := utils.GetUserIDFromContext(ctx)
	post, err := h.services.PostService.UpdatePost(ctx, actorID, chi.URLParam(r, "id"), request)
	if err != nil {
		writeError(w, r, err, opUpdatePost)
		return
	}

	utils.WriteData(w, models.PostData{Post: post}, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, _ := utils.GetUserIDFromContext(ctx)
	if err := h.services.PostService.DeletePost(ctx, actorID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, opDeletePost)
		return
	}

	utils.WriteMessage(w, app.MsgPostDeleted, http.StatusOK)
}
