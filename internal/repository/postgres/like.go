package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/ForumApp/thread-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type likeRepo struct {
	db *pgxpool.Pool
}

func newLikeRepo(db *pgxpool.Pool) Like {
	return &likeRepo{
		db: db,
	}
}

func (r *likeRepo) Find(ctx context.Context, ownerID uuid.UUID, threadID, commentID int64) (*model.Like, error) {
	var like model.Like
	if err := r.db.QueryRow(
		ctx,
		"SELECT l.id, l.owner_id, l.thread_id, l.comment_id, l.created_at FROM comment_likes l WHERE l.owner_id = $1 AND l.thread_id = $2 AND l.comment_id = $3",
		ownerID,
		threadID,
		commentID,
	).Scan(
		&like.ID,
		&like.OwnerID,
		&like.ThreadID,
		&like.CommentID,
		&like.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &like, nil
}

// Add relies on the foreign keys for target validation and on the
// (owner_id, comment_id) unique index for the at-most-one invariant.
// A concurrent duplicate like degrades to a no-op instead of a second row.
func (r *likeRepo) Add(ctx context.Context, like model.Like) error {
	like.CreatedAt = time.Now()

	_, err := r.db.Exec(
		ctx,
		"INSERT INTO comment_likes(owner_id, thread_id, comment_id, created_at) VALUES($1, $2, $3, $4)",
		like.OwnerID,
		like.ThreadID,
		like.CommentID,
		like.CreatedAt,
	)
	if err != nil {
		if isPgErr(err, pgForeignKeyViolation) {
			return ErrLikeTargetNotFound
		}
		if isPgErr(err, pgUniqueViolation) {
			return nil
		}
		return err
	}

	return nil
}

// Remove raises not-found for a missing comment even when no like row exists;
// an existing comment with no like to remove is not an error.
func (r *likeRepo) Remove(ctx context.Context, ownerID uuid.UUID, threadID, commentID int64) error {
	var id int64
	if err := r.db.QueryRow(
		ctx,
		"SELECT c.id FROM comments c WHERE c.id = $1 AND c.thread_id = $2",
		commentID,
		threadID,
	).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrLikeTargetNotFound
		}
		return err
	}

	_, err := r.db.Exec(
		ctx,
		"DELETE FROM comment_likes WHERE owner_id = $1 AND thread_id = $2 AND comment_id = $3",
		ownerID,
		threadID,
		commentID,
	)
	return err
}

func (r *likeRepo) CountForComment(ctx context.Context, commentID int64) (int64, error) {
	var count int64
	if err := r.db.QueryRow(
		ctx,
		"SELECT COUNT(l.id) FROM comment_likes l WHERE l.comment_id = $1",
		commentID,
	).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
