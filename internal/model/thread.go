package model

import (
	"time"

	"github.com/google/uuid"
)

type Thread struct {
	ID        int64     `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatedThread is what a successful thread insert reports back to the caller.
type CreatedThread struct {
	ID      int64     `json:"id"`
	Title   string    `json:"title"`
	OwnerID uuid.UUID `json:"owner_id"`
}
