package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/models"
	"github.com/mattn/go-sqlite3"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// timestamp scans a TIMESTAMP column into a UTC time.Time. pgx always
// yields time.Time; go-sqlite3 yields text when it cannot see the declared
// column type (e.g. in RETURNING clauses).
type timestamp struct {
	t *time.Time
}

func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*ts.t = v.UTC()
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	case nil:
		*ts.t = time.Time{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into timestamp", src)
	}
}

func (ts timestamp) parse(s string) error {
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.Parse(layout, s); err == nil {
			*ts.t = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("cannot parse timestamp %q", s)
}

// now returns the current time at the precision both backends store.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.Bio,
		&user.Avatar,
		timestamp{&user.CreatedAt},
		timestamp{&user.UpdatedAt},
	)
	return user, err
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.CoverImage,
		&post.IsDraft,
		&post.Views,
		&post.UserID,
		timestamp{&post.CreatedAt},
		timestamp{&post.UpdatedAt},
	)
	return post, err
}
