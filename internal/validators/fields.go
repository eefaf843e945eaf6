package validators

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmail      = "email"
	FieldUsername   = "username"
	FieldPassword   = "password"
	FieldBio        = "bio"
	FieldAvatar     = "avatar"
	FieldTitle      = "title"
	FieldContent    = "content"
	FieldCoverImage = "coverImage"
)

const (
	usernameMinLen   = 3
	usernameMaxLen   = 30
	passwordMinLen   = 6
	passwordMaxBytes = 72
	bioMaxLen        = 500
	titleMaxLen      = 200
)

var (
	usernameRegex = regexp.MustCompile(`^[a-z0-9_-]+$`)
	emailRegex    = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// normalizeEmail trims and lowercases an address.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// isValidEmail accepts bare addresses only: no display names, no angle
// brackets, and a dotted domain.
func isValidEmail(email string) bool {
	if !emailRegex.MatchString(email) {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Name == "" && addr.Address == email
}

func validateEmail(email string) error {
	if !isValidEmail(email) {
		return ErrInvalidEmail
	}
	return nil
}

func validateUsername(username string) error {
	n := utf8.RuneCountInString(username)
	switch {
	case n < usernameMinLen:
		return ErrUsernameTooShort
	case n > usernameMaxLen:
		return ErrUsernameTooLong
	case !usernameRegex.MatchString(username):
		return ErrUsernameInvalidChars
	}
	return nil
}

// isValidURL reports whether s is an absolute URL with a scheme and host.
func isValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// isOptionalURL accepts the empty string or an absolute URL.
func isOptionalURL(s string) bool {
	return s == "" || isValidURL(s)
}
