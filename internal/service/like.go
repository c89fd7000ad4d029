package service

import (
	"context"
	"errors"

	"github.com/ForumApp/thread-service/internal/model"
	"github.com/ForumApp/thread-service/internal/repository/postgres"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type likeService struct {
	logger *zap.Logger
	repo   postgres.Like
}

func newLikeService(logger *zap.Logger, repo postgres.Like) Like {
	return &likeService{
		logger: logger,
		repo:   repo,
	}
}

// Toggle reads the current Liked/NotLiked state and applies the opposite
// transition. The read and the write are separate statements; a concurrent
// toggle on the same pair resolves at the storage layer, where the unique
// index keeps at most one like per (owner, comment).
func (s *likeService) Toggle(ctx context.Context, ownerID uuid.UUID, threadID int64, commentID int64) (model.LikeState, error) {
	like, err := s.repo.Find(ctx, ownerID, threadID, commentID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user(%s) like for comment(%d): %s", ownerID.String(), commentID, err.Error())
		return model.NotLiked, ErrInternal
	}

	state := model.NotLiked
	if like != nil {
		state = model.Liked
	}
	next := state.Toggle()

	if next == model.Liked {
		err = s.repo.Add(ctx, model.Like{
			OwnerID:   ownerID,
			ThreadID:  threadID,
			CommentID: commentID,
		})
	} else {
		err = s.repo.Remove(ctx, ownerID, threadID, commentID)
	}

	if err != nil {
		if errors.Is(err, postgres.ErrLikeTargetNotFound) {
			return state, ErrLikeTargetNotFound
		}

		s.logger.Sugar().Errorf("failed to toggle user(%s) like for comment(%d): %s", ownerID.String(), commentID, err.Error())
		return state, ErrInternal
	}

	return next, nil
}
