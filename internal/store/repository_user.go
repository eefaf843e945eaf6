package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles user account creation, lookup and profile updates against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreateUser persists a new user record and returns it as stored.
//
// Email and username are lowercased, the id is generated when empty and
// both timestamps are set to the current time.
//
// Error handling:
//   - unique violation on email    → [ErrEmailAlreadyExists].
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.ID == "" {
		user.ID = r.ids.Generate()
	}
	user.Email = strings.ToLower(user.Email)
	user.Username = strings.ToLower(user.Username)
	user.CreatedAt = now()
	user.UpdatedAt = user.CreatedAt

	query, args, err := buildInsertUserQuery(r.db.Builder(), user)
	if err != nil {
		return models.User{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.db.classify(err)
	}

	return user, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUserBy(ctx, "id", id)
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUserBy(ctx, "email", strings.ToLower(strings.TrimSpace(email)))
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUserBy(ctx, "username", strings.ToLower(strings.TrimSpace(username)))
}

// findUserBy retrieves the user whose column equals value.
//
// Error handling:
//   - no rows                      → [ErrUserNotFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) findUserBy(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.db.Builder(), column, value)
	if err != nil {
		return models.User{}, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUserBy").Str("column", column).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, r.db.classify(err))
	}

	return user, nil
}

// UpdateProfile sets bio and/or avatar and returns the updated record in the
// same statement.
func (r *userRepository) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProfileQuery(r.db.Builder(), update, now())
	if err != nil {
		return models.User{}, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error updating profile")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, r.db.classify(err))
	}

	return user, nil
}
