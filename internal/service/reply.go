package service

import (
	"context"
	"errors"

	"github.com/ForumApp/thread-service/internal/model"
	"github.com/ForumApp/thread-service/internal/repository/postgres"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type replyService struct {
	logger *zap.Logger
	repo   postgres.Reply
}

func newReplyService(logger *zap.Logger, repo postgres.Reply) Reply {
	return &replyService{
		logger: logger,
		repo:   repo,
	}
}

func (s *replyService) Create(ctx context.Context, ownerID uuid.UUID, threadID int64, commentID int64, content string) (*model.CreatedComment, error) {
	reply := model.Reply{
		ThreadID: threadID,
		ParentID: commentID,
		OwnerID:  ownerID,
		Content:  content,
	}

	createdReply, err := s.repo.Create(ctx, reply)
	if err != nil {
		if errors.Is(err, postgres.ErrCommentNotFound) {
			return nil, ErrCommentNotFound
		}

		s.logger.Sugar().Errorf("failed to create user(%s) reply to comment(%d): %s", ownerID.String(), commentID, err.Error())
		return nil, ErrInternal
	}

	return createdReply, nil
}

func (s *replyService) Delete(ctx context.Context, ownerID uuid.UUID, threadID int64, commentID int64, replyID int64) error {
	if err := s.repo.SoftDelete(ctx, threadID, commentID, replyID, ownerID); err != nil {
		switch {
		case errors.Is(err, postgres.ErrReplyNotFound):
			return ErrReplyNotFound
		case errors.Is(err, postgres.ErrNotPermitted):
			return ErrNotPermitted
		}

		s.logger.Sugar().Errorf("failed to delete reply(%d) to comment(%d): %s", replyID, commentID, err.Error())
		return ErrInternal
	}

	return nil
}
