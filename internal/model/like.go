package model

import (
	"time"

	"github.com/google/uuid"
)

type Like struct {
	ID        int64     `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	ThreadID  int64     `json:"thread_id"`
	CommentID int64     `json:"comment_id"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeState is the two-state relationship between one user and one comment.
// Toggling is an explicit transition, not an incidental existence check.
type LikeState bool

const (
	NotLiked LikeState = false
	Liked    LikeState = true
)

func (s LikeState) Toggle() LikeState {
	return !s
}

func (s LikeState) String() string {
	if s == Liked {
		return "liked"
	}
	return "not_liked"
}
