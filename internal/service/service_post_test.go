package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/mock"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPostSvc(t *testing.T, cfg config.App) (PostService, *mock.MockPostRepository, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	posts := mock.NewMockPostRepository(ctrl)
	users := mock.NewMockUserRepository(ctrl)

	return NewPostService(posts, users, cfg, logger.Nop()), posts, users
}

func ptr[T any](v T) *T {
	return &v
}

func TestPostService_CreatePost_OwnerIsActor(t *testing.T) {
	svc, posts, _ := newTestPostSvc(t, config.App{})

	posts.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Post) (models.Post, error) {
			assert.Equal(t, "actor", p.UserID)
			assert.True(t, p.IsDraft)
			p.ID = "p1"
			return p, nil
		})

	post, err := svc.CreatePost(context.Background(), "actor", models.CreatePostRequest{Title: "t", Content: "c", IsDraft: ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, "actor", post.UserID)
}

func TestPostService_CreatePost_NoActor(t *testing.T) {
	svc, _, _ := newTestPostSvc(t, config.App{})

	_, err := svc.CreatePost(context.Background(), "", models.CreatePostRequest{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, ErrNoActor)
}

func TestPostService_GetPost_CountsEveryRead(t *testing.T) {
	svc, posts, _ := newTestPostSvc(t, config.App{})

	gomock.InOrder(
		posts.EXPECT().IncrementViews(gomock.Any(), "p1").Return(models.Post{ID: "p1", Views: 1}, nil),
		posts.EXPECT().IncrementViews(gomock.Any(), "p1").Return(models.Post{ID: "p1", Views: 2}, nil),
	)

	first, err := svc.GetPost(context.Background(), "p1")
	require.NoError(t, err)
	second, err := svc.GetPost(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.Views)
	assert.Equal(t, int64(2), second.Views)
}

func TestPostService_GetPost_NotFound(t *testing.T) {
	svc, posts, _ := newTestPostSvc(t, config.App{})
	posts.EXPECT().IncrementViews(gomock.Any(), "nope").Return(models.Post{}, store.ErrPostNotFound)

	_, err := svc.GetPost(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}

func TestPostService_UpdatePost(t *testing.T) {
	existing := models.Post{ID: "p1", Title: "old", UserID: "owner"}

	t.Run("owner updates", func(t *testing.T) {
		svc, posts, _ := newTestPostSvc(t, config.App{})
		posts.EXPECT().GetPostByID(gomock.Any(), "p1").Return(existing, nil)
		posts.EXPECT().UpdatePost(gomock.Any(), models.PostUpdate{ID: "p1", Title: ptr("new")}).
			Return(models.Post{ID: "p1", Title: "new", UserID: "owner"}, nil)

		post, err := svc.UpdatePost(context.Background(), "owner", "p1", models.UpdatePostRequest{Title: ptr("new")})
		require.NoError(t, err)
		assert.Equal(t, "new", post.Title)
	})

	t.Run("non-owner is forbidden and nothing is written", func(t *testing.T) {
		svc, posts, _ := newTestPostSvc(t, config.App{})
		posts.EXPECT().GetPostByID(gomock.Any(), "p1").Return(existing, nil)

		_, err := svc.UpdatePost(context.Background(), "intruder", "p1", models.UpdatePostRequest{Title: ptr("new")})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("missing post", func(t *testing.T) {
		svc, posts, _ := newTestPostSvc(t, config.App{})
		posts.EXPECT().GetPostByID(gomock.Any(), "p1").Return(models.Post{}, store.ErrPostNotFound)

		_, err := svc.UpdatePost(context.Background(), "owner", "p1", models.UpdatePostRequest{Title: ptr("new")})
		assert.ErrorIs(t, err, store.ErrPostNotFound)
	})

	t.Run("empty update returns the post", func(t *testing.T) {
		svc, posts, _ := newTestPostSvc(t, config.App{})
		posts.EXPECT().GetPostByID(gomock.Any(), "p1").Return(existing, nil)

		post, err := svc.UpdatePost(context.Background(), "owner", "p1", models.UpdatePostRequest{})
		require.NoError(t, err)
		assert.Equal(t, existing, post)
	})
}

func TestPostService_DeletePost(t *testing.T) {
	existing := models.Post{ID: "p1", UserID: "owner"}

	t.Run("owner deletes", func(t *testing.T) {
		svc, posts, _ := newTestPostSvc(t, config.App{})
		posts.EXPECT().GetPostByID(gomock.Any(), "p1").Return(existing, nil)
		posts.EXPECT().DeletePost(gomock.Any(), "p1").Return(nil)

		assert.NoError(t, svc.DeletePost(context.Background(), "owner", "p1"))
	})

	t.Run("non-owner", func(t *testing.T) {
		svc, posts, _ := newTestPostSvc(t, config.App{})
		posts.EXPECT().GetPostByID(gomock.Any(), "p1").Return(existing, nil)

		assert.ErrorIs(t, svc.DeletePost(context.Background(), "intruder", "p1"), ErrForbidden)
	})
}

func TestPostService_ListPosts(t *testing.T) {
	tests := []struct {
		name       string
		hide       bool
		owner      string
		viewer     string
		wantFilter models.PostFilter
	}{
		{name: "all, drafts included", wantFilter: models.PostFilter{}},
		{name: "by owner, drafts included", owner: "u1", wantFilter: models.PostFilter{UserID: "u1"}},
		{name: "hardened, foreign owner", hide: true, owner: "u1", viewer: "u2", wantFilter: models.PostFilter{UserID: "u1", PublishedOnly: true}},
		{name: "hardened, anonymous", hide: true, owner: "u1", wantFilter: models.PostFilter{UserID: "u1", PublishedOnly: true}},
		{name: "hardened, own posts", hide: true, owner: "u1", viewer: "u1", wantFilter: models.PostFilter{UserID: "u1"}},
		{name: "hardened, everyone", hide: true, viewer: "u1", wantFilter: models.PostFilter{PublishedOnly: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, posts, _ := newTestPostSvc(t, config.App{HideForeignDrafts: tt.hide})
			posts.EXPECT().ListPosts(gomock.Any(), tt.wantFilter).Return([]models.Post{}, nil)

			list, err := svc.ListPosts(context.Background(), tt.owner, tt.viewer)
			require.NoError(t, err)
			assert.NotNil(t, list)
		})
	}
}

func TestPostService_ListUserPosts(t *testing.T) {
	svc, posts, users := newTestPostSvc(t, config.App{})

	author := models.User{ID: "u1", Email: "secret@example.com", Username: "alice"}
	users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(author, nil)
	posts.EXPECT().ListPosts(gomock.Any(), models.PostFilter{UserID: "u1", PublishedOnly: true}).
		Return([]models.Post{{ID: "p2", UserID: "u1"}, {ID: "p1", UserID: "u1"}}, nil)

	data, err := svc.ListUserPosts(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, author.Public(), data.User)
	require.Len(t, data.Posts, 2)
	assert.Equal(t, "p2", data.Posts[0].ID)
}

func TestPostService_ListUserPosts_UnknownAuthor(t *testing.T) {
	svc, _, users := newTestPostSvc(t, config.App{})
	users.EXPECT().FindUserByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.ListUserPosts(context.Background(), "ghost")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestPostValidationService(t *testing.T) {
	svc, posts, _ := newTestPostSvc(t, config.App{})
	wrapped := NewPostValidationService().Wrap(svc)

	_, err := wrapped.CreatePost(context.Background(), "actor", models.CreatePostRequest{Title: "   ", Content: "c"})
	assert.ErrorIs(t, err, validators.ErrTitleEmpty)

	_, err = wrapped.UpdatePost(context.Background(), "actor", "p1", models.UpdatePostRequest{CoverImage: ptr("not a url")})
	assert.ErrorIs(t, err, validators.ErrInvalidCoverImage)

	posts.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Post) (models.Post, error) {
			assert.Equal(t, "Trimmed", p.Title)
			assert.False(t, p.IsDraft)
			return p, nil
		})
	_, err = wrapped.CreatePost(context.Background(), "actor", models.CreatePostRequest{Title: "  Trimmed ", Content: "c"})
	assert.NoError(t, err)
}
