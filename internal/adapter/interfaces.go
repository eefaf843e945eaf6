// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the blog HTTP API.
//
// [BlogClient] hides the JSON envelope and the session cookie: a successful
// Signup or Login leaves the cookie in the client's jar and every following
// call carries it. Failed responses are mapped to the sentinel errors in
// errors.go so callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401); the server's public message is kept in the
// error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// BlogClient is the client side of the /api surface.
type BlogClient interface {
	// Signup creates an account and starts a session for it.
	Signup(ctx context.Context, request models.SignupRequest) (models.User, error)

	// Login starts a session for an existing account.
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)

	// Logout ends the current session. It succeeds without one.
	Logout(ctx context.Context) error

	// Me returns the user of the current session.
	Me(ctx context.Context) (models.User, error)

	// ListPosts returns posts newest first, restricted to ownerID when it
	// is not empty.
	ListPosts(ctx context.Context, ownerID string) ([]models.Post, error)

	// GetPost returns one post. Every call counts as a view.
	GetPost(ctx context.Context, id string) (models.Post, error)

	CreatePost(ctx context.Context, request models.CreatePostRequest) (models.Post, error)
	UpdatePost(ctx context.Context, id string, request models.UpdatePostRequest) (models.Post, error)
	DeletePost(ctx context.Context, id string) error

	// ListUserPosts returns the public card and the published posts of the
	// user with the given username.
	ListUserPosts(ctx context.Context, username string) (models.AuthorPostsData, error)

	UpdateProfile(ctx context.Context, request models.UpdateProfileRequest) (models.User, error)
}
