package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestCreateReply(t *testing.T) {
	store := newFakeReplyStore()
	store.parents[10] = 1
	svc := newReplyService(zap.NewNop(), store)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, 1, 10, "a reply")
	if err != nil {
		t.Fatalf("create reply: %v", err)
	}
	if created.Content != "a reply" {
		t.Fatalf("unexpected content %q", created.Content)
	}
}

func TestCreateReplyMissingParent(t *testing.T) {
	svc := newReplyService(zap.NewNop(), newFakeReplyStore())

	if _, err := svc.Create(context.Background(), uuid.New(), 1, 999, "a reply"); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}

func TestCreateReplyParentUnderDifferentThread(t *testing.T) {
	store := newFakeReplyStore()
	store.parents[10] = 2 // parent exists, but under thread 2
	svc := newReplyService(zap.NewNop(), store)

	if _, err := svc.Create(context.Background(), uuid.New(), 1, 10, "a reply"); !errors.Is(err, ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound for cross-thread parent, got %v", err)
	}
}

func TestDeleteReply(t *testing.T) {
	store := newFakeReplyStore()
	store.parents[10] = 1
	svc := newReplyService(zap.NewNop(), store)
	owner := uuid.New()
	intruder := uuid.New()

	created, err := svc.Create(context.Background(), owner, 1, 10, "a reply")
	if err != nil {
		t.Fatalf("create reply: %v", err)
	}

	if err := svc.Delete(context.Background(), intruder, 1, 10, created.ID); !errors.Is(err, ErrNotPermitted) {
		t.Fatalf("expected ErrNotPermitted, got %v", err)
	}
	if err := svc.Delete(context.Background(), owner, 1, 10, created.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if !store.replies[0].IsDeleted {
		t.Fatal("reply must be marked deleted")
	}
}

func TestDeleteReplyWrongComment(t *testing.T) {
	store := newFakeReplyStore()
	store.parents[10] = 1
	svc := newReplyService(zap.NewNop(), store)
	owner := uuid.New()

	created, _ := svc.Create(context.Background(), owner, 1, 10, "a reply")

	if err := svc.Delete(context.Background(), owner, 1, 11, created.ID); !errors.Is(err, ErrReplyNotFound) {
		t.Fatalf("expected ErrReplyNotFound when comment id does not match, got %v", err)
	}
}
