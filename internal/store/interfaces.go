package store

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store: it owns user records.
type UserRepository interface {
	// CreateUser inserts user and returns the stored record. A missing ID is
	// generated. Duplicate email or username yields
	// [ErrEmailAlreadyExists] or [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID, FindUserByEmail and FindUserByUsername return
	// [ErrUserNotFound] when nothing matches.
	FindUserByID(ctx context.Context, id string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// UpdateProfile sets the non-nil profile fields and returns the updated
	// record.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)
}

// PostRepository is the content store: it owns post records.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)

	// GetPostByID returns [ErrPostNotFound] when the post does not exist.
	GetPostByID(ctx context.Context, id string) (models.Post, error)

	// IncrementViews atomically adds one view and returns the post as it is
	// after the increment.
	IncrementViews(ctx context.Context, id string) (models.Post, error)

	// UpdatePost applies the non-nil fields of update.
	UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error)

	DeletePost(ctx context.Context, id string) error

	// ListPosts returns matching posts, newest first.
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
}
