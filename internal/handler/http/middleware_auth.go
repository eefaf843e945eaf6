package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
)

// auth is an HTTP middleware that enforces session cookie authentication.
//
// It reads the "token" cookie, validates it via
// [service.AuthService.ParseToken], and on success stores the session claims
// in the request context under [utils.SessionCtxKey] before delegating to the
// next handler.
//
// Requests without a cookie or with an invalid, expired or tampered token
// are rejected with 401 and "Not authenticated" before any store access.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, ok := h.cookies.read(r)
		if !ok {
			log.Debug().Msg("no session cookie")
			utils.WriteError(w, app.MsgNotAuthenticated, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, app.MsgNotAuthenticated, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.ContextWithSession(ctx, claims)))
	})
}

// identify resolves the session like auth does but never rejects: an absent
// or invalid cookie leaves the request anonymous.
func (h *Handler) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, ok := h.cookies.read(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("ignoring invalid session cookie")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.ContextWithSession(ctx, claims)))
	})
}
