package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-resty/resty/v2"
)

type httpBlogClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPBlogClient returns a [BlogClient] talking to cfg.BaseURL.
func NewHTTPBlogClient(cfg config.ClientConfig, logger *logger.Logger) BlogClient {
	return &httpBlogClient{
		client: utils.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout),
		logger: logger,
	}
}

// envelope mirrors the server's response wrapper for a payload of type T.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// decodeData checks the status of resp and returns the envelope's data.
func decodeData[T any](resp *resty.Response, operation string) (T, error) {
	var env envelope[T]
	if err := mapHTTPError(resp); err != nil {
		return env.Data, err
	}

	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return env.Data, fmt.Errorf("decode %s response: %w", operation, err)
	}
	if !env.Success {
		return env.Data, fmt.Errorf("%w: %s: %s", ErrUnexpectedResponse, operation, env.Error)
	}

	return env.Data, nil
}

func (h *httpBlogClient) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpBlogClient) jsonRequest(ctx context.Context, body any) *resty.Request {
	return h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}

func (h *httpBlogClient) Signup(ctx context.Context, request models.SignupRequest) (models.User, error) {
	resp, err := h.jsonRequest(ctx, request).Post("/api/auth/signup")
	if err != nil {
		return models.User{}, fmt.Errorf("signup request: %w", err)
	}

	data, err := decodeData[models.UserData](resp, "signup")
	return data.User, err
}

func (h *httpBlogClient) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	resp, err := h.jsonRequest(ctx, request).Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}

	data, err := decodeData[models.UserData](resp, "login")
	if err == nil {
		h.logger.Debug().Str("user_id", data.User.ID).Msg("session started")
	}
	return data.User, err
}

func (h *httpBlogClient) Logout(ctx context.Context) error {
	resp, err := h.request(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBlogClient) Me(ctx context.Context) (models.User, error) {
	resp, err := h.request(ctx).Get("/api/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}

	data, err := decodeData[models.UserData](resp, "me")
	return data.User, err
}

func (h *httpBlogClient) ListPosts(ctx context.Context, ownerID string) ([]models.Post, error) {
	req := h.request(ctx)
	if ownerID != "" {
		req.SetQueryParam("userId", ownerID)
	}

	resp, err := req.Get("/api/posts")
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}

	data, err := decodeData[models.PostsData](resp, "list posts")
	return data.Posts, err
}

func (h *httpBlogClient) GetPost(ctx context.Context, id string) (models.Post, error) {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Get("/api/posts/{id}")
	if err != nil {
		return models.Post{}, fmt.Errorf("get post request: %w", err)
	}

	data, err := decodeData[models.PostData](resp, "get post")
	return data.Post, err
}

func (h *httpBlogClient) CreatePost(ctx context.Context, request models.CreatePostRequest) (models.Post, error) {
	resp, err := h.jsonRequest(ctx, request).Post("/api/posts")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}

	data, err := decodeData[models.PostData](resp, "create post")
	return data.Post, err
}

func (h *httpBlogClient) UpdatePost(ctx context.Context, id string, request models.UpdatePostRequest) (models.Post, error) {
	resp, err := h.jsonRequest(ctx, request).
		SetPathParam("id", id).
		Put("/api/posts/{id}")
	if err != nil {
		return models.Post{}, fmt.Errorf("update post request: %w", err)
	}

	data, err := decodeData[models.PostData](resp, "update post")
	return data.Post, err
}

func (h *httpBlogClient) DeletePost(ctx context.Context, id string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Delete("/api/posts/{id}")
	if err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBlogClient) ListUserPosts(ctx context.Context, username string) (models.AuthorPostsData, error) {
	resp, err := h.request(ctx).
		SetPathParam("username", username).
		Get("/api/user/{username}/posts")
	if err != nil {
		return models.AuthorPostsData{}, fmt.Errorf("user posts request: %w", err)
	}

	return decodeData[models.AuthorPostsData](resp, "user posts")
}

func (h *httpBlogClient) UpdateProfile(ctx context.Context, request models.UpdateProfileRequest) (models.User, error) {
	resp, err := h.jsonRequest(ctx, request).Put("/api/user/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w", err)
	}

	data, err := decodeData[models.UserData](resp, "update profile")
	return data.User, err
}
