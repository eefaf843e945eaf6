package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Constraint names declared by the schema migrations.
const (
	constraintUsersEmail    = "users_email_key"
	constraintUsersUsername = "users_username_key"
	constraintPostsUserID   = "posts_user_id_fkey"
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver and maps
// constraint violations to store sentinels.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. If err is nil or is not
// a PostgreSQL driver error, err is returned as is.
func (c *PostgresErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return err
}

// ClassifyPgError maps a *pgconn.PgError to a store sentinel based on
// the PostgreSQL error code and constraint name.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
//   - 23505 unique_violation on users_email_key    → [ErrEmailAlreadyExists]
//   - 23505 unique_violation on users_username_key → [ErrUsernameAlreadyExists]
//   - 23505 on any other constraint                → [ErrAlreadyExists]
//   - 23503 foreign_key_violation on posts.user_id → [ErrUserNotFound]
//
// Any other code is returned wrapped, unclassified.
func ClassifyPgError(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		switch pgErr.ConstraintName {
		case constraintUsersEmail:
			return ErrEmailAlreadyExists
		case constraintUsersUsername:
			return ErrUsernameAlreadyExists
		default:
			return fmt.Errorf("%w: %s", ErrAlreadyExists, pgErr.ConstraintName)
		}

	case pgerrcode.ForeignKeyViolation:
		if pgErr.ConstraintName == constraintPostsUserID {
			return ErrUserNotFound
		}
	}

	return fmt.Errorf("unexpected DB error: %w", pgErr)
}
