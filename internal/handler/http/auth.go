package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignupRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err, opSignup)
		return
	}

	user, err := h.services.AuthService.Signup(ctx, request)
	if err != nil {
		writeError(w, r, err, opSignup)
		return
	}

	token, err := h.services.AuthService.IssueToken(ctx, user)
	if err != nil {
		writeError(w, r, err, opSignup)
		return
	}

	h.cookies.set(w, token)
	log.Info().Str("id", user.ID).Msg("user signed up")

	utils.WriteData(w, models.UserData{User: user}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err, opLogin)
		return
	}

	user, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeError(w, r, err, opLogin)
		return
	}

	token, err := h.services.AuthService.IssueToken(ctx, user)
	if err != nil {
		writeError(w, r, err, opLogin)
		return
	}

	h.cookies.set(w, token)
	log.Debug().Str("id", user.ID).Msg("user successfully logged in")

	utils.WriteData(w, models.UserData{User: user}, http.StatusOK)
}

// logout clears the cookie whether or not the caller was logged in.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.cookies.clear(w)
	utils.WriteMessage(w, app.MsgLoggedOut, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, _ := utils.GetUserIDFromContext(ctx)
	user, err := h.services.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		writeError(w, r, err, opMe)
		return
	}

	utils.WriteData(w, models.UserData{User: user}, http.StatusOK)
}
