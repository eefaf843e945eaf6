package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// AuthValidationService checks and normalizes signup and login payloads
// before they reach the wrapped AuthService.
type AuthValidationService struct {
	AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *AuthValidationService) Signup(ctx context.Context, request models.SignupRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, &request); err != nil {
		return models.User{}, fmt.Errorf("signup validation failed: %w", err)
	}

	return v.AuthService.Signup(ctx, request)
}

func (v *AuthValidationService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, &request); err != nil {
		return models.User{}, fmt.Errorf("login validation failed: %w", err)
	}

	return v.AuthService.Login(ctx, request)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.AuthService = inner
	return v
}

// PostValidationService checks and normalizes post payloads before they
// reach the wrapped PostService.
type PostValidationService struct {
	PostService
	validator validators.Validator
}

func NewPostValidationService() PostServiceWrapper {
	return &PostValidationService{
		validator: validators.NewPostValidator(),
	}
}

func (v *PostValidationService) CreatePost(ctx context.Context, actorID string, request models.CreatePostRequest) (models.Post, error) {
	if err := v.validator.Validate(ctx, &request); err != nil {
		return models.Post{}, fmt.Errorf("post validation failed: %w", err)
	}

	return v.PostService.CreatePost(ctx, actorID, request)
}

func (v *PostValidationService) UpdatePost(ctx context.Context, actorID, id string, request models.UpdatePostRequest) (models.Post, error) {
	if err := v.validator.Validate(ctx, &request); err != nil {
		return models.Post{}, fmt.Errorf("post validation failed: %w", err)
	}

	return v.PostService.UpdatePost(ctx, actorID, id, request)
}

func (v *PostValidationService) Wrap(inner PostService) PostService {
	v.PostService = inner
	return v
}

// UserValidationService checks profile payloads before they reach the
// wrapped UserService.
type UserValidationService struct {
	UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) UpdateProfile(ctx context.Context, userID string, request models.UpdateProfileRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, &request); err != nil {
		return models.User{}, fmt.Errorf("profile validation failed: %w", err)
	}

	return v.UserService.UpdateProfile(ctx, userID, request)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.UserService = inner
	return v
}
