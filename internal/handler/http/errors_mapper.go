package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
)

// publicError is what the caller sees for a known failure.
type publicError struct {
	status  int
	message string
}

var errorStatusMap = map[error]publicError{
	ErrInvalidJSON: {http.StatusBadRequest, app.MsgInvalidJSON},
	ErrEmptyBody:   {http.StatusBadRequest, app.MsgInvalidJSON},

	service.ErrInvalidCredentials: {http.StatusUnauthorized, app.MsgInvalidCredentials},
	service.ErrInvalidToken:       {http.StatusUnauthorized, app.MsgNotAuthenticated},
	service.ErrNoActor:            {http.StatusUnauthorized, app.MsgNotAuthenticated},

	store.ErrEmailAlreadyExists:    {http.StatusBadRequest, app.MsgEmailAlreadyExists},
	store.ErrUsernameAlreadyExists: {http.StatusBadRequest, app.MsgUsernameAlreadyTaken},
	store.ErrUserNotFound:          {http.StatusNotFound, app.MsgUserNotFound},
	store.ErrPostNotFound:          {http.StatusNotFound, app.MsgPostNotFound},
}

// operation names the public messages of one endpoint: the generic failure
// and, for owner-only endpoints, the forbidden message.
type operation struct {
	failed    string
	forbidden string
}

var (
	opSignup        = operation{failed: app.MsgSignupFailed}
	opLogin         = operation{failed: app.MsgLoginFailed}
	opMe            = operation{failed: app.MsgGetUserFailed}
	opListPosts     = operation{failed: app.MsgFetchPostsFailed}
	opGetPost       = operation{failed: app.MsgFetchPostFailed}
	opCreatePost    = operation{failed: app.MsgCreatePostFailed}
	opUpdatePost    = operation{failed: app.MsgUpdatePostFailed, forbidden: app.MsgForbiddenPostUpdate}
	opDeletePost    = operation{failed: app.MsgDeletePostFailed, forbidden: app.MsgForbiddenPostDelete}
	opUserPosts     = operation{failed: app.MsgUserPostsFailed}
	opUpdateProfile = operation{failed: app.MsgUpdateProfileFailed}
)

// errorResponse maps err to the status and message sent to the caller.
// Validation failures carry their own message; anything unknown becomes a
// 500 with the operation's generic failure message.
func errorResponse(err error, op operation) publicError {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return publicError{http.StatusBadRequest, validationErr.Message}
	}

	if errors.Is(err, service.ErrForbidden) {
		return publicError{http.StatusForbidden, op.forbidden}
	}

	for target, public := range errorStatusMap {
		if errors.Is(err, target) {
			return public
		}
	}

	return publicError{http.StatusInternalServerError, op.failed}
}

// writeError logs err in full and writes its public envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error, op operation) {
	public := errorResponse(err, op)

	log := logger.FromRequest(r)
	if public.status >= http.StatusInternalServerError {
		log.Err(err).Msg(public.message)
	} else {
		log.Debug().Err(err).Int("status", public.status).Msg(public.message)
	}

	utils.WriteError(w, public.message, public.status)
}
