package service

import "errors"

var (
	// ErrInvalidCredentials hides whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrForbidden is returned when the actor does not own the post.
	ErrForbidden = errors.New("actor is not the owner")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrInvalidToken        = errors.New("token is expired or invalid")

	ErrNoActor = errors.New("no authenticated actor")
)
