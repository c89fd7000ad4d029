package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ForumApp/thread-service/internal/model"
	"github.com/ForumApp/thread-service/internal/repository/postgres"
	"github.com/google/uuid"
)

// In-memory stores implementing the postgres interfaces. They reproduce the
// contracts the real queries provide: creation-order listing, soft-delete
// ownership checks, the at-most-one like invariant.

type fakeThreadStore struct {
	nextID  int64
	threads map[int64]model.Thread
	err     error
}

func newFakeThreadStore() *fakeThreadStore {
	return &fakeThreadStore{threads: make(map[int64]model.Thread)}
}

func (f *fakeThreadStore) Create(_ context.Context, thread model.Thread) (*model.CreatedThread, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	thread.ID = f.nextID
	if thread.CreatedAt.IsZero() {
		thread.CreatedAt = time.Now()
	}
	f.threads[thread.ID] = thread
	return &model.CreatedThread{ID: thread.ID, Title: thread.Title, OwnerID: thread.OwnerID}, nil
}

func (f *fakeThreadStore) FindByID(_ context.Context, id int64) (*model.Thread, error) {
	if f.err != nil {
		return nil, f.err
	}
	thread, ok := f.threads[id]
	if !ok {
		return nil, postgres.ErrThreadNotFound
	}
	return &thread, nil
}

type fakeCommentStore struct {
	nextID   int64
	comments []model.Comment
	err      error
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{}
}

func (f *fakeCommentStore) Create(_ context.Context, comment model.Comment) (*model.CreatedComment, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	comment.ID = f.nextID
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	f.comments = append(f.comments, comment)
	return &model.CreatedComment{ID: comment.ID, Content: comment.Content, OwnerID: comment.OwnerID}, nil
}

func (f *fakeCommentStore) SoftDelete(_ context.Context, threadID, commentID int64, requesterID uuid.UUID) error {
	for i, comment := range f.comments {
		if comment.ID != commentID || comment.ThreadID != threadID {
			continue
		}
		if comment.OwnerID != requesterID {
			return postgres.ErrNotPermitted
		}
		f.comments[i].IsDeleted = true
		return nil
	}
	return postgres.ErrCommentNotFound
}

func (f *fakeCommentStore) FindThreadComments(_ context.Context, threadID int64) ([]model.Comment, error) {
	if f.err != nil {
		return nil, f.err
	}
	comments := make([]model.Comment, 0)
	for _, comment := range f.comments {
		if comment.ThreadID == threadID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

type fakeReplyStore struct {
	nextID  int64
	parents map[int64]int64 // commentID -> threadID
	replies []model.Reply
	err     error
}

func newFakeReplyStore() *fakeReplyStore {
	return &fakeReplyStore{parents: make(map[int64]int64)}
}

func (f *fakeReplyStore) Create(_ context.Context, reply model.Reply) (*model.CreatedComment, error) {
	if f.err != nil {
		return nil, f.err
	}
	if threadID, ok := f.parents[reply.ParentID]; !ok || threadID != reply.ThreadID {
		return nil, postgres.ErrCommentNotFound
	}
	f.nextID++
	reply.ID = f.nextID
	if reply.CreatedAt.IsZero() {
		reply.CreatedAt = time.Now()
	}
	f.replies = append(f.replies, reply)
	return &model.CreatedComment{ID: reply.ID, Content: reply.Content, OwnerID: reply.OwnerID}, nil
}

func (f *fakeReplyStore) SoftDelete(_ context.Context, threadID, commentID, replyID int64, requesterID uuid.UUID) error {
	for i, reply := range f.replies {
		if reply.ID != replyID || reply.ThreadID != threadID || reply.ParentID != commentID {
			continue
		}
		if reply.OwnerID != requesterID {
			return postgres.ErrNotPermitted
		}
		f.replies[i].IsDeleted = true
		return nil
	}
	return postgres.ErrReplyNotFound
}

func (f *fakeReplyStore) FindByCommentIDs(_ context.Context, commentIDs []int64) ([]model.Reply, error) {
	if f.err != nil {
		return nil, f.err
	}
	wanted := make(map[int64]struct{}, len(commentIDs))
	for _, id := range commentIDs {
		wanted[id] = struct{}{}
	}
	replies := make([]model.Reply, 0)
	for _, reply := range f.replies {
		if _, ok := wanted[reply.ParentID]; ok {
			replies = append(replies, reply)
		}
	}
	return replies, nil
}

type fakeLikeStore struct {
	nextID   int64
	likes    map[string]model.Like
	comments map[int64]int64 // commentID -> threadID
	err      error
}

func newFakeLikeStore() *fakeLikeStore {
	return &fakeLikeStore{
		likes:    make(map[string]model.Like),
		comments: make(map[int64]int64),
	}
}

func likeKey(ownerID uuid.UUID, commentID int64) string {
	return fmt.Sprintf("%s:%d", ownerID.String(), commentID)
}

func (f *fakeLikeStore) Find(_ context.Context, ownerID uuid.UUID, threadID, commentID int64) (*model.Like, error) {
	if f.err != nil {
		return nil, f.err
	}
	like, ok := f.likes[likeKey(ownerID, commentID)]
	if !ok || like.ThreadID != threadID {
		return nil, nil
	}
	return &like, nil
}

func (f *fakeLikeStore) Add(_ context.Context, like model.Like) error {
	if f.err != nil {
		return f.err
	}
	if threadID, ok := f.comments[like.CommentID]; !ok || threadID != like.ThreadID {
		return postgres.ErrLikeTargetNotFound
	}
	key := likeKey(like.OwnerID, like.CommentID)
	if _, exists := f.likes[key]; exists {
		return nil
	}
	f.nextID++
	like.ID = f.nextID
	like.CreatedAt = time.Now()
	f.likes[key] = like
	return nil
}

func (f *fakeLikeStore) Remove(_ context.Context, ownerID uuid.UUID, threadID, commentID int64) error {
	if f.err != nil {
		return f.err
	}
	if storedThreadID, ok := f.comments[commentID]; !ok || storedThreadID != threadID {
		return postgres.ErrLikeTargetNotFound
	}
	delete(f.likes, likeKey(ownerID, commentID))
	return nil
}

func (f *fakeLikeStore) CountForComment(_ context.Context, commentID int64) (int64, error) {
	var count int64
	for _, like := range f.likes {
		if like.CommentID == commentID {
			count++
		}
	}
	return count, nil
}

type fakeUserStore struct {
	users map[uuid.UUID]model.CachedUser
	err   error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]model.CachedUser)}
}

func (f *fakeUserStore) Create(_ context.Context, cachedUser model.CachedUser) error {
	f.users[cachedUser.ID] = cachedUser
	return nil
}

func (f *fakeUserStore) Update(_ context.Context, id uuid.UUID, updates map[string]interface{}) error {
	user, ok := f.users[id]
	if !ok {
		return nil
	}
	if username, exists := updates["username"].(string); exists {
		user.Username = username
	}
	f.users[id] = user
	return nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id uuid.UUID) (*model.CachedUser, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("no rows in result set")
	}
	return &user, nil
}

func (f *fakeUserStore) FindByIDs(_ context.Context, ids []uuid.UUID) ([]model.CachedUser, error) {
	if f.err != nil {
		return nil, f.err
	}
	users := make([]model.CachedUser, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if user, ok := f.users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}
