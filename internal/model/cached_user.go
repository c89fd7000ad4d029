package model

import "github.com/google/uuid"

// CachedUser is a local copy of a user-service account. Identity is resolved
// for display only; this service never creates accounts itself.
type CachedUser struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url"`
}
