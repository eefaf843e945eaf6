package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

type postService struct {
	postRepository store.PostRepository
	userRepository store.UserRepository

	// hideForeignDrafts restricts ListPosts to published posts unless the
	// viewer lists their own posts.
	hideForeignDrafts bool

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, userRepository store.UserRepository, cfg config.App, logger *logger.Logger) PostService {
	return &postService{
		postRepository:    postRepository,
		userRepository:    userRepository,
		hideForeignDrafts: cfg.HideForeignDrafts,
		logger:            logger,
	}
}

// CreatePost stores a new post owned by actorID. The owner never comes from
// the request.
func (s *postService) CreatePost(ctx context.Context, actorID string, request models.CreatePostRequest) (models.Post, error) {
	if actorID == "" {
		return models.Post{}, ErrNoActor
	}

	post := models.Post{
		Title:      request.Title,
		Content:    request.Content,
		CoverImage: request.CoverImage,
		UserID:     actorID,
	}
	if request.IsDraft != nil {
		post.IsDraft = *request.IsDraft
	}

	created, err := s.postRepository.CreatePost(ctx, post)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("actor", actorID).Msg("post creation failed")
		return models.Post{}, fmt.Errorf("post creation failed: %w", err)
	}

	return created, nil
}

// GetPost increments the view counter and returns the post as of that
// increment. Owners reading their own posts are counted too.
func (s *postService) GetPost(ctx context.Context, id string) (models.Post, error) {
	post, err := s.postRepository.IncrementViews(ctx, id)
	if err != nil {
		return models.Post{}, fmt.Errorf("post read failed: %w", err)
	}

	return post, nil
}

// UpdatePost applies the present fields of request after checking that the
// post exists and belongs to actorID. An empty request returns the post
// unchanged.
func (s *postService) UpdatePost(ctx context.Context, actorID, id string, request models.UpdatePostRequest) (models.Post, error) {
	post, err := s.ownedPost(ctx, actorID, id)
	if err != nil {
		return models.Post{}, err
	}

	update := models.PostUpdate{
		ID:         post.ID,
		Title:      request.Title,
		Content:    request.Content,
		CoverImage: request.CoverImage,
		IsDraft:    request.IsDraft,
	}
	if update.IsEmpty() {
		return post, nil
	}

	updated, err := s.postRepository.UpdatePost(ctx, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("post", id).Msg("post update failed")
		return models.Post{}, fmt.Errorf("post update failed: %w", err)
	}

	return updated, nil
}

func (s *postService) DeletePost(ctx context.Context, actorID, id string) error {
	if _, err := s.ownedPost(ctx, actorID, id); err != nil {
		return err
	}

	if err := s.postRepository.DeletePost(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("post", id).Msg("post deletion failed")
		return fmt.Errorf("post deletion failed: %w", err)
	}

	return nil
}

// ownedPost loads the post and rejects actors other than its owner.
func (s *postService) ownedPost(ctx context.Context, actorID, id string) (models.Post, error) {
	if actorID == "" {
		return models.Post{}, ErrNoActor
	}

	post, err := s.postRepository.GetPostByID(ctx, id)
	if err != nil {
		return models.Post{}, fmt.Errorf("post lookup failed: %w", err)
	}

	if !post.IsOwnedBy(actorID) {
		logger.FromContext(ctx).Warn().Str("post", id).Str("actor", actorID).Msg("non-owner tried to modify post")
		return models.Post{}, ErrForbidden
	}

	return post, nil
}

// ListPosts lists posts, drafts included. With hideForeignDrafts set only
// the owner listing their own posts sees drafts.
func (s *postService) ListPosts(ctx context.Context, ownerID, viewerID string) ([]models.Post, error) {
	filter := models.PostFilter{UserID: ownerID}
	if s.hideForeignDrafts {
		filter.PublishedOnly = ownerID == "" || ownerID != viewerID
	}

	posts, err := s.postRepository.ListPosts(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("post listing failed")
		return nil, fmt.Errorf("post listing failed: %w", err)
	}

	return posts, nil
}

func (s *postService) ListUserPosts(ctx context.Context, username string) (models.AuthorPostsData, error) {
	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return models.AuthorPostsData{}, fmt.Errorf("author lookup failed: %w", err)
	}

	posts, err := s.postRepository.ListPosts(ctx, models.PostFilter{UserID: user.ID, PublishedOnly: true})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("author post listing failed")
		return models.AuthorPostsData{}, fmt.Errorf("author post listing failed: %w", err)
	}

	public := make([]models.PublicPost, 0, len(posts))
	for _, p := range posts {
		public = append(public, p.Public())
	}

	return models.AuthorPostsData{User: user.Public(), Posts: public}, nil
}
