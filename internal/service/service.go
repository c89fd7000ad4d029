package service

import (
	"context"

	"github.com/ForumApp/thread-service/internal/model"
	"github.com/ForumApp/thread-service/internal/rabbitmq"
	"github.com/ForumApp/thread-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Thread interface {
	Create(ctx context.Context, ownerID uuid.UUID, title string, body string) (*model.CreatedThread, error)
	FindDetail(ctx context.Context, threadID int64) (*model.ThreadDetail, error)
}

type Comment interface {
	Create(ctx context.Context, ownerID uuid.UUID, threadID int64, content string) (*model.CreatedComment, error)
	Delete(ctx context.Context, ownerID uuid.UUID, threadID int64, commentID int64) error
}

type Reply interface {
	Create(ctx context.Context, ownerID uuid.UUID, threadID int64, commentID int64, content string) (*model.CreatedComment, error)
	Delete(ctx context.Context, ownerID uuid.UUID, threadID int64, commentID int64, replyID int64) error
}

type Like interface {
	Toggle(ctx context.Context, ownerID uuid.UUID, threadID int64, commentID int64) (model.LikeState, error)
}

type UserCache interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.CachedUser, error)
	StartConsume(ctx context.Context)
}

type Service struct {
	Thread
	Comment
	Reply
	Like
	UserCache
}

func New(logger *zap.Logger, repo *repository.Repository, mq *rabbitmq.MQConn) *Service {
	return &Service{
		Thread:    newThreadService(logger, repo.Postgres.Thread, repo.Postgres.Comment, repo.Postgres.Reply, repo.Postgres.UserCache),
		Comment:   newCommentService(logger, repo.Postgres.Comment),
		Reply:     newReplyService(logger, repo.Postgres.Reply),
		Like:      newLikeService(logger, repo.Postgres.Like),
		UserCache: newUserCacheService(logger, repo.Postgres.UserCache, repo.Redis.Default, mq),
	}
}

func (s *Service) StartConsumeAll(ctx context.Context) {
	s.UserCache.StartConsume(ctx)
}
