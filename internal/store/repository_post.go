package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// postRepository is the SQL implementation of [PostRepository] over the
// "posts" table.
type postRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreatePost stores post with a fresh id, zero views and current
// timestamps. A post referencing a missing user yields [ErrUserNotFound].
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	post.ID = r.ids.Generate()
	post.Views = 0
	post.CreatedAt = now()
	post.UpdatedAt = post.CreatedAt

	query, args, err := buildInsertPostQuery(r.db.Builder(), post)
	if err != nil {
		return models.Post{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error inserting post")
		return models.Post{}, r.db.classify(err)
	}

	return post, nil
}

func (r *postRepository) GetPostByID(ctx context.Context, id string) (models.Post, error) {
	query, args, err := buildSelectPostQuery(r.db.Builder(), id)
	if err != nil {
		return models.Post{}, err
	}

	return r.queryPost(ctx, "*postRepository.GetPostByID", query, args)
}

func (r *postRepository) IncrementViews(ctx context.Context, id string) (models.Post, error) {
	query, args, err := buildIncrementViewsQuery(r.db.Builder(), id)
	if err != nil {
		return models.Post{}, err
	}

	return r.queryPost(ctx, "*postRepository.IncrementViews", query, args)
}

func (r *postRepository) UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error) {
	query, args, err := buildUpdatePostQuery(r.db.Builder(), update, now())
	if err != nil {
		return models.Post{}, err
	}

	return r.queryPost(ctx, "*postRepository.UpdatePost", query, args)
}

// queryPost runs a statement returning at most one post row.
func (r *postRepository) queryPost(ctx context.Context, funcName, query string, args []any) (models.Post, error) {
	post, err := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error querying post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, r.db.classify(err))
	}

	return post, nil
}

func (r *postRepository) DeletePost(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePostQuery(r.db.Builder(), id)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error deleting post")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}

	return nil
}

func (r *postRepository) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPostsQuery(r.db.Builder(), filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error listing posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}
