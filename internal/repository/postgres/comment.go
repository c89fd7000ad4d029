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

type commentRepo struct {
	db *pgxpool.Pool
}

func newCommentRepo(db *pgxpool.Pool) Comment {
	return &commentRepo{
		db: db,
	}
}

// Create inserts without pre-checking the thread: the foreign key already
// rejects a bad thread_id, so one round trip is enough.
func (r *commentRepo) Create(ctx context.Context, comment model.Comment) (*model.CreatedComment, error) {
	comment.CreatedAt = time.Now()

	var created model.CreatedComment
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO comments(thread_id, owner_id, content, created_at) VALUES($1, $2, $3, $4) RETURNING id, content, owner_id",
		comment.ThreadID,
		comment.OwnerID,
		comment.Content,
		comment.CreatedAt,
	).Scan(&created.ID, &created.Content, &created.OwnerID); err != nil {
		if isPgErr(err, pgForeignKeyViolation) {
			return nil, ErrThreadNotFound
		}
		return nil, err
	}

	return &created, nil
}

func (r *commentRepo) SoftDelete(ctx context.Context, threadID, commentID int64, requesterID uuid.UUID) error {
	var ownerID uuid.UUID
	if err := r.db.QueryRow(
		ctx,
		"SELECT c.owner_id FROM comments c WHERE c.id = $1 AND c.thread_id = $2 AND c.parent_id IS NULL",
		commentID,
		threadID,
	).Scan(&ownerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCommentNotFound
		}
		return err
	}

	if ownerID != requesterID {
		return ErrNotPermitted
	}

	_, err := r.db.Exec(
		ctx,
		"UPDATE comments SET is_deleted = true WHERE id = $1 AND thread_id = $2",
		commentID,
		threadID,
	)
	return err
}

// FindThreadComments returns top-level comments in creation order, each
// carrying its like count from a single aggregate join.
func (r *commentRepo) FindThreadComments(ctx context.Context, threadID int64) ([]model.Comment, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT
		c.id, c.thread_id, c.owner_id, c.content, c.is_deleted, c.created_at, COUNT(DISTINCT l.id)
		FROM comments c
		LEFT JOIN comment_likes l ON l.comment_id = c.id
		WHERE c.thread_id = $1 AND c.parent_id IS NULL
		GROUP BY c.id
		ORDER BY c.created_at ASC`,
		threadID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]model.Comment, 0)
	for rows.Next() {
		var comment model.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.ThreadID,
			&comment.OwnerID,
			&comment.Content,
			&comment.IsDeleted,
			&comment.CreatedAt,
			&comment.Likes,
		); err != nil {
			return nil, err
		}

		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}
