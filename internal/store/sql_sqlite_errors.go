package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
//
// SQLite reports the violated columns in the message
// ("UNIQUE constraint failed: users.email"), so unique violations are told
// apart by column rather than by constraint name.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) error {
	if err == nil {
		return nil
	}

	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return err
	}

	switch liteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		msg := liteErr.Error()
		switch {
		case strings.Contains(msg, "users.email"):
			return ErrEmailAlreadyExists
		case strings.Contains(msg, "users.username"):
			return ErrUsernameAlreadyExists
		default:
			return fmt.Errorf("%w: %s", ErrAlreadyExists, msg)
		}
	case sqlite3.ErrConstraintForeignKey:
		return ErrUserNotFound
	}

	return fmt.Errorf("unexpected DB error: %w", err)
}
