package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-blog/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns = []string{"id", "email", "username", "password_hash", "bio", "avatar", "created_at", "updated_at"}
	postColumns = []string{"id", "title", "content", "cover_image", "is_draft", "views", "user_id", "created_at", "updated_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.Username, user.PasswordHash, user.Bio, user.Avatar, user.CreatedAt, user.UpdatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectUserQuery selects one user by a single unique column.
func buildSelectUserQuery(b sq.StatementBuilderType, column string, value string) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateProfileQuery sets updated_at and every non-nil profile field.
func buildUpdateProfileQuery(b sq.StatementBuilderType, update models.ProfileUpdate, now time.Time) (string, []any, error) {
	builder := b.Update(models.User{}.TableName()).
		Set("updated_at", now)

	if update.Bio != nil {
		builder = builder.Set("bio", *update.Bio)
	}
	if update.Avatar != nil {
		builder = builder.Set("avatar", *update.Avatar)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": update.UserID}).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertPostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	query, args, err := b.Insert(post.TableName()).
		Columns(postColumns...).
		Values(post.ID, post.Title, post.Content, post.CoverImage, post.IsDraft, post.Views, post.UserID, post.CreatedAt, post.UpdatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectPostQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.Select(postColumns...).
		From(models.Post{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildIncrementViewsQuery bumps the counter in the same statement that
// returns the post, so concurrent readers never lose an increment.
func buildIncrementViewsQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.Update(models.Post{}.TableName()).
		Set("views", sq.Expr("views + 1")).
		Where(sq.Eq{"id": id}).
		Suffix(returning(postColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdatePostQuery sets updated_at and every non-nil post field. The
// owner and the view counter are never part of the SET list.
func buildUpdatePostQuery(b sq.StatementBuilderType, update models.PostUpdate, now time.Time) (string, []any, error) {
	builder := b.Update(models.Post{}.TableName()).
		Set("updated_at", now)

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.CoverImage != nil {
		builder = builder.Set("cover_image", *update.CoverImage)
	}
	if update.IsDraft != nil {
		builder = builder.Set("is_draft", *update.IsDraft)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": update.ID}).
		Suffix(returning(postColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeletePostQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.Delete(models.Post{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListPostsQuery selects posts matching filter, newest first. Ties on
// created_at are broken by id, which is time-ordered as well.
func buildListPostsQuery(b sq.StatementBuilderType, filter models.PostFilter) (string, []any, error) {
	builder := b.Select(postColumns...).
		From(models.Post{}.TableName())

	if filter.UserID != "" {
		builder = builder.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.PublishedOnly {
		builder = builder.Where(sq.Eq{"is_draft": false})
	}

	query, args, err := builder.
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
