package service

import (
	"context"
	"errors"
	"time"

	"github.com/ForumApp/thread-service/internal/model"
	"github.com/ForumApp/thread-service/internal/repository/postgres"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Soft-deleted content is masked at the view layer; the rows keep their text.
const (
	deletedCommentPlaceholder = "**komentar telah dihapus**"
	deletedReplyPlaceholder   = "**balasan telah dihapus**"
)

type threadService struct {
	logger   *zap.Logger
	threads  postgres.Thread
	comments postgres.Comment
	replies  postgres.Reply
	users    postgres.UserCache
}

func newThreadService(logger *zap.Logger, threads postgres.Thread, comments postgres.Comment, replies postgres.Reply, users postgres.UserCache) Thread {
	return &threadService{
		logger:   logger,
		threads:  threads,
		comments: comments,
		replies:  replies,
		users:    users,
	}
}

func (s *threadService) Create(ctx context.Context, ownerID uuid.UUID, title string, body string) (*model.CreatedThread, error) {
	thread := model.Thread{
		OwnerID: ownerID,
		Title:   title,
		Body:    body,
	}

	createdThread, err := s.threads.Create(ctx, thread)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) thread: %s", ownerID.String(), err.Error())
		return nil, ErrInternal
	}

	return createdThread, nil
}

// FindDetail assembles the full display tree for one thread from four batched
// reads: the header, the top-level comments (with like counts), the replies
// for all of those comments, and the usernames for every distinct owner seen.
// Any read failure past validation collapses into ErrThreadNotFound; callers
// get one failure mode for the whole aggregation.
func (s *threadService) FindDetail(ctx context.Context, threadID int64) (*model.ThreadDetail, error) {
	thread, err := s.threads.FindByID(ctx, threadID)
	if err != nil {
		if !errors.Is(err, postgres.ErrThreadNotFound) {
			s.logger.Sugar().Errorf("failed to find thread(%d): %s", threadID, err.Error())
		}
		return nil, ErrThreadNotFound
	}

	comments, err := s.comments.FindThreadComments(ctx, threadID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find thread(%d) comments: %s", threadID, err.Error())
		return nil, ErrThreadNotFound
	}

	commentIDs := make([]int64, 0, len(comments))
	for _, comment := range comments {
		commentIDs = append(commentIDs, comment.ID)
	}

	replies, err := s.replies.FindByCommentIDs(ctx, commentIDs)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find thread(%d) replies: %s", threadID, err.Error())
		return nil, ErrThreadNotFound
	}

	usernames, err := s.resolveUsernames(ctx, thread.OwnerID, comments, replies)
	if err != nil {
		s.logger.Sugar().Errorf("failed to resolve thread(%d) usernames: %s", threadID, err.Error())
		return nil, ErrThreadNotFound
	}

	detail := &model.ThreadDetail{
		ID:       thread.ID,
		Title:    thread.Title,
		Body:     thread.Body,
		Date:     formatDate(thread.CreatedAt),
		Username: usernames[thread.OwnerID],
		Comments: make([]model.CommentView, 0, len(comments)),
	}

	for _, comment := range comments {
		view := model.CommentView{
			ID:        comment.ID,
			Username:  usernames[comment.OwnerID],
			Date:      formatDate(comment.CreatedAt),
			Content:   displayContent(comment, deletedCommentPlaceholder),
			LikeCount: comment.Likes,
			Replies:   make([]model.ReplyView, 0),
		}

		// The reply batch is already in creation order; filtering by parent
		// preserves it.
		for _, reply := range replies {
			if reply.ParentID != comment.ID {
				continue
			}

			view.Replies = append(view.Replies, model.ReplyView{
				ID:       reply.ID,
				Username: usernames[reply.OwnerID],
				Date:     formatDate(reply.CreatedAt),
				Content:  displayContent(reply, deletedReplyPlaceholder),
			})
		}

		detail.Comments = append(detail.Comments, view)
	}

	return detail, nil
}

// resolveUsernames dedupes every owner appearing anywhere in the result set
// and resolves the whole batch in one lookup. Owners without a cached user
// stay absent from the map, so lookups fall back to "".
func (s *threadService) resolveUsernames(ctx context.Context, threadOwner uuid.UUID, comments []model.Comment, replies []model.Reply) (map[uuid.UUID]string, error) {
	ownerIDs := []uuid.UUID{threadOwner}
	seen := map[uuid.UUID]struct{}{threadOwner: {}}

	appendOwner := func(item model.Commentable) {
		if _, ok := seen[item.Owner()]; ok {
			return
		}
		seen[item.Owner()] = struct{}{}
		ownerIDs = append(ownerIDs, item.Owner())
	}

	for _, comment := range comments {
		appendOwner(comment)
	}
	for _, reply := range replies {
		appendOwner(reply)
	}

	users, err := s.users.FindByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	usernames := make(map[uuid.UUID]string, len(users))
	for _, user := range users {
		usernames[user.ID] = user.Username
	}

	return usernames, nil
}

func displayContent(item model.Commentable, placeholder string) string {
	if item.Deleted() {
		return placeholder
	}
	return item.Body()
}

// Timestamps leave this service as RFC3339 UTC strings and nothing more.
func formatDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
