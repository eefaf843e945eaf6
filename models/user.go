// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a blog account. It is the record owned by the credential
// store. PasswordHash is never serialized.
type User struct {
	// ID is the unique identifier of the user (UUID v7 string).
	ID string `json:"id"`

	// Email is unique, trimmed and lowercased before storage and lookup.
	Email string `json:"email"`

	// Username is unique, trimmed and lowercased. It is immutable after signup.
	Username string `json:"username"`

	// PasswordHash holds the bcrypt hash of the user's password.
	// It must never leave the server.
	PasswordHash string `json:"-"`

	// Bio is an optional free-form description (at most 500 characters).
	Bio string `json:"bio"`

	// Avatar is an optional URL of the profile picture.
	Avatar string `json:"avatar"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the subset of user fields that may be shown to anonymous
// readers. Email is deliberately omitted.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Bio:      u.Bio,
		Avatar:   u.Avatar,
	}
}

// PublicUser is the author card rendered next to a public post listing.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
}

// ProfileUpdate carries the mutable profile fields. Nil fields are left
// untouched by the store.
type ProfileUpdate struct {
	UserID string
	Bio    *string
	Avatar *string
}
