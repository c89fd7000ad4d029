package postgres

import (
	"context"
	"errors"

	"github.com/ForumApp/thread-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentinel errors raised by the stores. The service layer maps them onto the
// caller-facing taxonomy; nothing above the repository inspects pg error codes.
var (
	ErrThreadNotFound     = errors.New("thread not found")
	ErrCommentNotFound    = errors.New("comment thread not found")
	ErrReplyNotFound      = errors.New("reply or comment or thread not found")
	ErrLikeTargetNotFound = errors.New("comment or thread not found")
	ErrNotPermitted       = errors.New("not authorized to do this action")
)

type Thread interface {
	Create(ctx context.Context, thread model.Thread) (*model.CreatedThread, error)
	FindByID(ctx context.Context, id int64) (*model.Thread, error)
}

type Comment interface {
	Create(ctx context.Context, comment model.Comment) (*model.CreatedComment, error)
	SoftDelete(ctx context.Context, threadID, commentID int64, requesterID uuid.UUID) error
	FindThreadComments(ctx context.Context, threadID int64) ([]model.Comment, error)
}

type Reply interface {
	Create(ctx context.Context, reply model.Reply) (*model.CreatedComment, error)
	SoftDelete(ctx context.Context, threadID, commentID, replyID int64, requesterID uuid.UUID) error
	FindByCommentIDs(ctx context.Context, commentIDs []int64) ([]model.Reply, error)
}

type Like interface {
	Find(ctx context.Context, ownerID uuid.UUID, threadID, commentID int64) (*model.Like, error)
	Add(ctx context.Context, like model.Like) error
	Remove(ctx context.Context, ownerID uuid.UUID, threadID, commentID int64) error
	CountForComment(ctx context.Context, commentID int64) (int64, error)
}

type UserCache interface {
	Create(ctx context.Context, cachedUser model.CachedUser) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CachedUser, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.CachedUser, error)
}

type PostgresRepository struct {
	Thread
	Comment
	Reply
	Like
	UserCache
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		Thread:    newThreadRepo(db),
		Comment:   newCommentRepo(db),
		Reply:     newReplyRepo(db),
		Like:      newLikeRepo(db),
		UserCache: newUserCacheRepo(db),
	}
}

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

func isPgErr(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
