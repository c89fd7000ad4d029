package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ForumApp/thread-service/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestToggleLikeThenUnlike(t *testing.T) {
	store := newFakeLikeStore()
	store.comments[10] = 1
	svc := newLikeService(zap.NewNop(), store)
	owner := uuid.New()

	state, err := svc.Toggle(context.Background(), owner, 1, 10)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if state != model.Liked {
		t.Fatalf("expected Liked after first toggle, got %s", state)
	}

	count, _ := store.CountForComment(context.Background(), 10)
	if count != 1 {
		t.Fatalf("expected 1 like, got %d", count)
	}

	state, err = svc.Toggle(context.Background(), owner, 1, 10)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if state != model.NotLiked {
		t.Fatalf("expected NotLiked after second toggle, got %s", state)
	}

	if like, _ := store.Find(context.Background(), owner, 1, 10); like != nil {
		t.Fatal("like row must be gone after the pair of toggles")
	}
	count, _ = store.CountForComment(context.Background(), 10)
	if count != 0 {
		t.Fatalf("expected like count back to 0, got %d", count)
	}
}

func TestToggleTwoOwnersIndependent(t *testing.T) {
	store := newFakeLikeStore()
	store.comments[10] = 1
	svc := newLikeService(zap.NewNop(), store)
	ownerA := uuid.New()
	ownerB := uuid.New()

	if _, err := svc.Toggle(context.Background(), ownerA, 1, 10); err != nil {
		t.Fatalf("toggle A: %v", err)
	}
	if _, err := svc.Toggle(context.Background(), ownerB, 1, 10); err != nil {
		t.Fatalf("toggle B: %v", err)
	}

	count, _ := store.CountForComment(context.Background(), 10)
	if count != 2 {
		t.Fatalf("expected 2 likes, got %d", count)
	}
}

func TestToggleMissingTarget(t *testing.T) {
	store := newFakeLikeStore()
	svc := newLikeService(zap.NewNop(), store)

	if _, err := svc.Toggle(context.Background(), uuid.New(), 1, 999); !errors.Is(err, ErrLikeTargetNotFound) {
		t.Fatalf("expected ErrLikeTargetNotFound, got %v", err)
	}
}

func TestLikeStateToggle(t *testing.T) {
	if model.NotLiked.Toggle() != model.Liked {
		t.Fatal("NotLiked must toggle to Liked")
	}
	if model.Liked.Toggle() != model.NotLiked {
		t.Fatal("Liked must toggle to NotLiked")
	}
}
