package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/ForumApp/thread-service/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type threadRepo struct {
	db *pgxpool.Pool
}

func newThreadRepo(db *pgxpool.Pool) Thread {
	return &threadRepo{
		db: db,
	}
}

func (r *threadRepo) Create(ctx context.Context, thread model.Thread) (*model.CreatedThread, error) {
	thread.CreatedAt = time.Now()

	var created model.CreatedThread
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO threads(owner_id, title, body, created_at) VALUES($1, $2, $3, $4) RETURNING id, title, owner_id",
		thread.OwnerID,
		thread.Title,
		thread.Body,
		thread.CreatedAt,
	).Scan(&created.ID, &created.Title, &created.OwnerID); err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *threadRepo) FindByID(ctx context.Context, id int64) (*model.Thread, error) {
	var thread model.Thread
	if err := r.db.QueryRow(
		ctx,
		"SELECT t.id, t.owner_id, t.title, t.body, t.created_at FROM threads t WHERE t.id = $1",
		id,
	).Scan(
		&thread.ID,
		&thread.OwnerID,
		&thread.Title,
		&thread.Body,
		&thread.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrThreadNotFound
		}
		return nil, err
	}

	return &thread, nil
}
