package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// UpdateProfile sets bio and avatar. Email, username and password are not
// reachable through this path. A request without fields returns the current
// profile.
func (s *userService) UpdateProfile(ctx context.Context, userID string, request models.UpdateProfileRequest) (models.User, error) {
	if userID == "" {
		return models.User{}, ErrNoActor
	}

	if request.Bio == nil && request.Avatar == nil {
		user, err := s.userRepository.FindUserByID(ctx, userID)
		if err != nil {
			return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
		}
		return user, nil
	}

	user, err := s.userRepository.UpdateProfile(ctx, models.ProfileUpdate{
		UserID: userID,
		Bio:    request.Bio,
		Avatar: request.Avatar,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return user, nil
}
