// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the HTTP
// handlers and the API client.
//
// Keeping them in one place ensures consistent wording throughout the API
// and lets the client map responses back to errors without guessing.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgNotAuthenticated is returned when a protected route is called
	// without a valid session cookie.
	MsgNotAuthenticated = "Not authenticated"

	// MsgInvalidCredentials is returned for both an unknown email and a
	// wrong password so that accounts cannot be enumerated.
	MsgInvalidCredentials = "Invalid email or password"

	// MsgEmailAlreadyExists is returned when signup collides on email.
	MsgEmailAlreadyExists = "Email already exists"

	// MsgUsernameAlreadyTaken is returned when signup collides on username.
	MsgUsernameAlreadyTaken = "Username already taken"

	MsgUserNotFound  = "User not found"
	MsgPostNotFound  = "Post not found"
	MsgRouteNotFound = "Not found"

	// MsgForbiddenPostUpdate and MsgForbiddenPostDelete are returned when a
	// caller who is not the owner tries to mutate a post.
	MsgForbiddenPostUpdate = "Unauthorized to update this post"
	MsgForbiddenPostDelete = "Unauthorized to delete this post"

	MsgLoggedOut   = "Logged out successfully"
	MsgPostDeleted = "Post deleted successfully"
)

// Generic failure messages. Internal error detail never reaches the caller;
// it is logged instead.
const (
	MsgSignupFailed        = "Failed to create account. Please try again."
	MsgLoginFailed         = "Failed to log in. Please try again."
	MsgLogoutFailed        = "Failed to log out"
	MsgGetUserFailed       = "Failed to get user information"
	MsgFetchPostsFailed    = "Failed to fetch posts"
	MsgFetchPostFailed     = "Failed to fetch post"
	MsgCreatePostFailed    = "Failed to create post"
	MsgUpdatePostFailed    = "Failed to update post"
	MsgDeletePostFailed    = "Failed to delete post"
	MsgUserPostsFailed     = "Failed to fetch user posts"
	MsgUpdateProfileFailed = "Failed to update profile"
)
