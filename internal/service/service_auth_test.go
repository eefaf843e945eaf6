// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/crypto"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/mock"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAppConfig = config.App{
	TokenSignKey:     "test-sign-key",
	TokenIssuer:      "go-blog-test",
	TokenDuration:    7 * 24 * time.Hour,
	PasswordHashCost: 4,
}

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	users := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	return NewAuthService(users, hasher, testAppConfig, logger.Nop()), users, hasher
}

// ── Signup ───────────────────────────────────────────────────────────────────

func TestAuthService_Signup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	request := models.SignupRequest{Email: "new@example.com", Username: "newbie", Password: "secret1"}

	gomock.InOrder(
		users.EXPECT().FindUserByEmail(ctx, "new@example.com").Return(models.User{}, store.ErrUserNotFound),
		users.EXPECT().FindUserByUsername(ctx, "newbie").Return(models.User{}, store.ErrUserNotFound),
		hasher.EXPECT().Hash("secret1").Return("$2a$hash", nil),
		users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "$2a$hash", u.PasswordHash)
				assert.Equal(t, "newbie", u.Username)
				u.ID = "u1"
				return u, nil
			}),
	)

	user, err := svc.Signup(ctx, request)
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestAuthService_Signup_EmailCheckedBeforeUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)

	// both taken: the email collision wins and the username is never queried
	users.EXPECT().FindUserByEmail(gomock.Any(), "taken@example.com").Return(models.User{ID: "u1"}, nil)

	_, err := svc.Signup(context.Background(), models.SignupRequest{Email: "taken@example.com", Username: "taken", Password: "secret1"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
	assert.NotErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestAuthService_Signup_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)

	users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	users.EXPECT().FindUserByUsername(gomock.Any(), "taken").Return(models.User{ID: "u1"}, nil)

	_, err := svc.Signup(context.Background(), models.SignupRequest{Email: "a@example.com", Username: "taken", Password: "secret1"})
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestAuthService_Signup_RaceCaughtByStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, hasher := newTestAuthSvc(t, ctrl)

	users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	users.EXPECT().FindUserByUsername(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	hasher.EXPECT().Hash(gomock.Any()).Return("h", nil)
	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Signup(context.Background(), models.SignupRequest{Email: "a@example.com", Username: "abc", Password: "secret1"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Signup_LookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)

	boom := errors.New("db down")
	users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, boom)

	_, err := svc.Signup(context.Background(), models.SignupRequest{Email: "a@example.com", Username: "abc", Password: "secret1"})
	assert.ErrorIs(t, err, boom)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	stored := models.User{ID: "u1", Email: "a@example.com", PasswordHash: "hash"}

	tests := []struct {
		name    string
		setup   func(users *mock.MockUserRepository, hasher *mock.MockPasswordHasher)
		wantErr error
	}{
		{
			name: "success",
			setup: func(users *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				users.EXPECT().FindUserByEmail(gomock.Any(), "a@example.com").Return(stored, nil)
				hasher.EXPECT().Verify("secret1", "hash").Return(true)
			},
		},
		{
			name: "unknown email",
			setup: func(users *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func(users *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(stored, nil)
				hasher.EXPECT().Verify("secret1", "hash").Return(false)
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, users, hasher := newTestAuthSvc(t, ctrl)
			tt.setup(users, hasher)

			user, err := svc.Login(context.Background(), models.LoginRequest{Email: "a@example.com", Password: "secret1"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, user.ID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u1", user.ID)
		})
	}
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, hasher := newTestAuthSvc(t, ctrl)

	users.EXPECT().FindUserByEmail(gomock.Any(), "ghost@example.com").Return(models.User{}, store.ErrUserNotFound)
	users.EXPECT().FindUserByEmail(gomock.Any(), "a@example.com").Return(models.User{ID: "u1", PasswordHash: "hash"}, nil)
	hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(false)

	_, unknown := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@example.com", Password: "x"})
	_, wrong := svc.Login(context.Background(), models.LoginRequest{Email: "a@example.com", Password: "x"})

	assert.Equal(t, unknown.Error(), wrong.Error())
}

// ── CurrentUser ──────────────────────────────────────────────────────────────

func TestAuthService_CurrentUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)

	users.EXPECT().FindUserByID(gomock.Any(), "u1").Return(models.User{ID: "u1"}, nil)
	users.EXPECT().FindUserByID(gomock.Any(), "gone").Return(models.User{}, store.ErrUserNotFound)

	user, err := svc.CurrentUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	_, err = svc.CurrentUser(context.Background(), "gone")
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	_, err = svc.CurrentUser(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoActor)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := NewAuthService(nil, crypto.NewBcryptHasher(4), testAppConfig, logger.Nop())
	user := models.User{ID: "u1", Email: "a@example.com", Username: "alice"}

	token, err := svc.IssueToken(context.Background(), user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), token.ExpiresAt, 5*time.Second)

	claims, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, "alice", claims.Username)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := NewAuthService(nil, nil, testAppConfig, logger.Nop())

	other := testAppConfig
	other.TokenSignKey = "another-key"
	foreign, err := NewAuthService(nil, nil, other, logger.Nop()).IssueToken(context.Background(), models.User{ID: "u1"})
	require.NoError(t, err)

	for _, tok := range []string{"", "garbage", foreign.SignedString} {
		_, err := svc.ParseToken(context.Background(), tok)
		assert.ErrorIs(t, err, ErrInvalidToken, tok)
	}
}

func TestAuthService_IssueToken_NoUserID(t *testing.T) {
	svc := NewAuthService(nil, nil, testAppConfig, logger.Nop())

	_, err := svc.IssueToken(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

// ── Validation layer ─────────────────────────────────────────────────────────

func TestAuthValidationService_RejectsBeforeStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner, _, _ := newTestAuthSvc(t, ctrl) // no expectations: any store call fails the test
	svc := NewAuthValidationService().Wrap(inner)

	tests := []struct {
		name    string
		request models.SignupRequest
		want    error
	}{
		{name: "bad email", request: models.SignupRequest{Email: "nope", Username: "abc", Password: "secret1"}, want: validators.ErrInvalidEmail},
		{name: "short username", request: models.SignupRequest{Email: "a@example.com", Username: "AB", Password: "secret1"}, want: validators.ErrUsernameTooShort},
		{name: "uppercase username", request: models.SignupRequest{Email: "a@example.com", Username: "Ab_valid", Password: "secret1"}, want: validators.ErrUsernameInvalidChars},
		{name: "short password", request: models.SignupRequest{Email: "a@example.com", Username: "abc", Password: "12345"}, want: validators.ErrPasswordTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), tt.request)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, validators.ErrInvalidInput)
		})
	}

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "a@example.com"})
	assert.ErrorIs(t, err, validators.ErrPasswordRequired)
}

func TestAuthValidationService_NormalizesBeforeStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner, users, _ := newTestAuthSvc(t, ctrl)
	svc := NewAuthValidationService().Wrap(inner)

	users.EXPECT().FindUserByEmail(gomock.Any(), "mixed@example.com").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "  Mixed@Example.COM ", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
