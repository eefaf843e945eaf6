package service

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// AuthService covers account creation, credential checks and the session
// token lifecycle.
type AuthService interface {
	// Signup creates an account. An existing email is reported before an
	// existing username.
	Signup(ctx context.Context, request models.SignupRequest) (models.User, error)

	// Login returns the account matching the credentials or
	// [ErrInvalidCredentials], whether the email is unknown or the password
	// is wrong.
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)

	// CurrentUser resolves the account behind an authenticated session.
	CurrentUser(ctx context.Context, userID string) (models.User, error)

	IssueToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.SessionClaims, error)
}

// PostService covers post authoring and reading. actorID is always the id
// of the authenticated caller.
type PostService interface {
	CreatePost(ctx context.Context, actorID string, request models.CreatePostRequest) (models.Post, error)

	// GetPost counts a view and returns the post including it.
	GetPost(ctx context.Context, id string) (models.Post, error)

	UpdatePost(ctx context.Context, actorID, id string, request models.UpdatePostRequest) (models.Post, error)
	DeletePost(ctx context.Context, actorID, id string) error

	// ListPosts lists posts newest first, optionally for one owner. viewerID
	// is empty for anonymous callers.
	ListPosts(ctx context.Context, ownerID, viewerID string) ([]models.Post, error)

	// ListUserPosts returns an author's public profile and published posts.
	ListUserPosts(ctx context.Context, username string) (models.AuthorPostsData, error)
}

// UserService covers profile maintenance.
type UserService interface {
	UpdateProfile(ctx context.Context, userID string, request models.UpdateProfileRequest) (models.User, error)
}

// AuthServiceWrapper, PostServiceWrapper and UserServiceWrapper define
// middleware composition for the services. Implementations wrap an existing
// service to add behavior such as validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type PostServiceWrapper interface {
	Wrap(PostService) PostService
}

type UserServiceWrapper interface {
	Wrap(UserService) UserService
}
