package model

import (
	"time"

	"github.com/google/uuid"
)

// Commentable is the shared shape of everything written under a thread.
// Comments and replies are distinct types; both rows live in the same table,
// but only the repository knows that.
type Commentable interface {
	ItemID() int64
	Owner() uuid.UUID
	Body() string
	Deleted() bool
	Created() time.Time
}

// Comment is a top-level comment attached directly to a thread.
type Comment struct {
	ID        int64     `json:"id"`
	ThreadID  int64     `json:"thread_id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Content   string    `json:"content"`
	Likes     int64     `json:"likes"`
	IsDeleted bool      `json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
}

func (c Comment) ItemID() int64      { return c.ID }
func (c Comment) Owner() uuid.UUID   { return c.OwnerID }
func (c Comment) Body() string       { return c.Content }
func (c Comment) Deleted() bool      { return c.IsDeleted }
func (c Comment) Created() time.Time { return c.CreatedAt }

// Reply is bound to exactly one parent comment. Replies do not nest further.
type Reply struct {
	ID        int64     `json:"id"`
	ThreadID  int64     `json:"thread_id"`
	ParentID  int64     `json:"parent_id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Content   string    `json:"content"`
	IsDeleted bool      `json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
}

func (r Reply) ItemID() int64      { return r.ID }
func (r Reply) Owner() uuid.UUID   { return r.OwnerID }
func (r Reply) Body() string       { return r.Content }
func (r Reply) Deleted() bool      { return r.IsDeleted }
func (r Reply) Created() time.Time { return r.CreatedAt }

// CreatedComment is what a successful comment or reply insert reports back.
type CreatedComment struct {
	ID      int64     `json:"id"`
	Content string    `json:"content"`
	OwnerID uuid.UUID `json:"owner_id"`
}
