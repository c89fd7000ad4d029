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

type replyRepo struct {
	db *pgxpool.Pool
}

func newReplyRepo(db *pgxpool.Pool) Reply {
	return &replyRepo{
		db: db,
	}
}

// Create pre-checks the parent explicitly: the foreign key on parent_id alone
// cannot tell a missing comment from a comment under a different thread.
func (r *replyRepo) Create(ctx context.Context, reply model.Reply) (*model.CreatedComment, error) {
	var parentID int64
	if err := r.db.QueryRow(
		ctx,
		"SELECT c.id FROM comments c WHERE c.id = $1 AND c.thread_id = $2 AND c.parent_id IS NULL",
		reply.ParentID,
		reply.ThreadID,
	).Scan(&parentID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	reply.CreatedAt = time.Now()

	var created model.CreatedComment
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO comments(thread_id, parent_id, owner_id, content, created_at) VALUES($1, $2, $3, $4, $5) RETURNING id, content, owner_id",
		reply.ThreadID,
		reply.ParentID,
		reply.OwnerID,
		reply.Content,
		reply.CreatedAt,
	).Scan(&created.ID, &created.Content, &created.OwnerID); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *replyRepo) SoftDelete(ctx context.Context, threadID, commentID, replyID int64, requesterID uuid.UUID) error {
	var ownerID uuid.UUID
	if err := r.db.QueryRow(
		ctx,
		"SELECT c.owner_id FROM comments c WHERE c.id = $1 AND c.thread_id = $2 AND c.parent_id = $3",
		replyID,
		threadID,
		commentID,
	).Scan(&ownerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrReplyNotFound
		}
		return err
	}

	if ownerID != requesterID {
		return ErrNotPermitted
	}

	_, err := r.db.Exec(
		ctx,
		"UPDATE comments SET is_deleted = true WHERE id = $1 AND thread_id = $2 AND parent_id = $3",
		replyID,
		threadID,
		commentID,
	)
	return err
}

// FindByCommentIDs fetches replies for every supplied parent in one query,
// in creation order across the whole batch.
func (r *replyRepo) FindByCommentIDs(ctx context.Context, commentIDs []int64) ([]model.Reply, error) {
	replies := make([]model.Reply, 0)
	if len(commentIDs) == 0 {
		return replies, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT
		c.id, c.thread_id, c.parent_id, c.owner_id, c.content, c.is_deleted, c.created_at
		FROM comments c
		WHERE c.parent_id = ANY($1)
		ORDER BY c.created_at ASC`,
		commentIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var reply model.Reply
		if err := rows.Scan(
			&reply.ID,
			&reply.ThreadID,
			&reply.ParentID,
			&reply.OwnerID,
			&reply.Content,
			&reply.IsDeleted,
			&reply.CreatedAt,
		); err != nil {
			return nil, err
		}

		replies = append(replies, reply)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return replies, nil
}
