// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Post is a blog entry owned by exactly one user.
type Post struct {
	// ID is the unique identifier of the post (UUID v7 string).
	ID string `json:"id"`

	// Title is between 1 and 200 characters long.
	Title string `json:"title"`

	// Content is the rich-text markup of the post body. Never empty.
	Content string `json:"content"`

	// CoverImage is an optional URL; empty when not set.
	CoverImage string `json:"coverImage"`

	// IsDraft hides the post from public per-author listings.
	IsDraft bool `json:"isDraft"`

	// Views counts single-post reads. It only ever grows.
	Views int64 `json:"views"`

	// UserID references the owner. It is set once from the authenticated
	// actor and never changes.
	UserID string `json:"userId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// IsOwnedBy reports whether userID is the owner of the post.
func (p Post) IsOwnedBy(userID string) bool {
	return userID != "" && p.UserID == userID
}

// Public returns the post without draft flag and owner reference, the shape
// used by the public per-author listing.
func (p Post) Public() PublicPost {
	return PublicPost{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		CoverImage: p.CoverImage,
		Views:      p.Views,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// PublicPost is a published post as shown on an author's page.
type PublicPost struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CoverImage string    `json:"coverImage"`
	Views      int64     `json:"views"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// PostFilter narrows a post listing.
type PostFilter struct {
	// UserID restricts the listing to one owner. Empty means all owners.
	UserID string

	// PublishedOnly excludes drafts.
	PublishedOnly bool
}

// PostUpdate describes a partial update of a single post.
// Only non-nil fields will be updated.
type PostUpdate struct {
	// ID is the identifier of the post to update. Required.
	ID string

	Title      *string
	Content    *string
	CoverImage *string
	IsDraft    *bool
}

// IsEmpty reports whether the update changes no field.
func (u PostUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.CoverImage == nil && u.IsDraft == nil
}
