package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/crypto"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and session token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher turns plaintext passwords into bcrypt hashes and verifies them.
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Signup creates a new user account from an already validated request.
//
// Uniqueness is checked up front, email first, so that a request colliding
// on both fields is reported as a duplicate email. The unique constraints of
// the store still reject a concurrent duplicate that slips past the checks.
//
// Returns the persisted user or:
//   - store.ErrEmailAlreadyExists / store.ErrUsernameAlreadyExists.
//   - A wrapped storage or hashing error.
func (a *authService) Signup(ctx context.Context, request models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.ensureAvailable(ctx, request.Email, a.userRepository.FindUserByEmail, store.ErrEmailAlreadyExists); err != nil {
		return models.User{}, err
	}
	if err := a.ensureAvailable(ctx, request.Username, a.userRepository.FindUserByUsername, store.ErrUsernameAlreadyExists); err != nil {
		return models.User{}, err
	}

	hash, err := a.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        request.Email,
		Username:     request.Username,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// ensureAvailable fails with taken when find locates a user by value.
func (a *authService) ensureAvailable(
	ctx context.Context,
	value string,
	find func(context.Context, string) (models.User, error),
	taken error,
) error {
	_, err := find(ctx, value)
	switch {
	case err == nil:
		return taken
	case errors.Is(err, store.ErrUserNotFound):
		return nil
	default:
		logger.FromContext(ctx).Err(err).Msg("user uniqueness check failed")
		return fmt.Errorf("user uniqueness check failed: %w", err)
	}
}

// Login authenticates an existing user.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials so
// that callers cannot probe which emails are registered.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Msg("login attempt for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(request.Password, foundUser.PasswordHash) {
		log.Debug().Str("id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

func (a *authService) CurrentUser(ctx context.Context, userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, ErrNoActor
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("current user lookup failed: %w", err)
	}

	return user, nil
}

// IssueToken issues a signed session token for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) IssueToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateSessionToken(a.tokenIssuer, models.NewSessionClaims(user), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw token string. Any validation failure (expired,
// wrong issuer, malformed, tampered) is normalised to ErrInvalidToken so that
// callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.SessionClaims, error) {
	claims, err := utils.ValidateSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session token rejected")
		return models.SessionClaims{}, ErrInvalidToken
	}

	return claims, nil
}
