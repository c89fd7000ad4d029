package service

import (
	"context"
	"errors"

	"github.com/ForumApp/thread-service/internal/model"
	"github.com/ForumApp/thread-service/internal/repository/postgres"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type commentService struct {
	logger *zap.Logger
	repo   postgres.Comment
}

func newCommentService(logger *zap.Logger, repo postgres.Comment) Comment {
	return &commentService{
		logger: logger,
		repo:   repo,
	}
}

func (s *commentService) Create(ctx context.Context, ownerID uuid.UUID, threadID int64, content string) (*model.CreatedComment, error) {
	comment := model.Comment{
		ThreadID: threadID,
		OwnerID:  ownerID,
		Content:  content,
	}

	createdComment, err := s.repo.Create(ctx, comment)
	if err != nil {
		if errors.Is(err, postgres.ErrThreadNotFound) {
			return nil, ErrThreadNotFound
		}

		s.logger.Sugar().Errorf("failed to create user(%s) comment in thread(%d): %s", ownerID.String(), threadID, err.Error())
		return nil, ErrInternal
	}

	return createdComment, nil
}

func (s *commentService) Delete(ctx context.Context, ownerID uuid.UUID, threadID int64, commentID int64) error {
	if err := s.repo.SoftDelete(ctx, threadID, commentID, ownerID); err != nil {
		switch {
		case errors.Is(err, postgres.ErrCommentNotFound):
			return ErrCommentNotFound
		case errors.Is(err, postgres.ErrNotPermitted):
			return ErrNotPermitted
		}

		s.logger.Sugar().Errorf("failed to delete comment(%d) in thread(%d): %s", commentID, threadID, err.Error())
		return ErrInternal
	}

	return nil
}
