package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/models"
)

// sessionCookieName is the cookie carrying the session token.
const sessionCookieName = "token"

// sessionCookie binds session tokens to an HTTP-only cookie. There is no
// header-based bearer path.
type sessionCookie struct {
	secure bool
	maxAge time.Duration
}

func newSessionCookie(cfg config.App) sessionCookie {
	return sessionCookie{
		secure: cfg.IsProduction(),
		maxAge: cfg.TokenDuration,
	}
}

func (c sessionCookie) set(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   int(c.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clear expires the cookie in the browser.
func (c sessionCookie) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// read returns the token from the request, if any.
func (c sessionCookie) read(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
