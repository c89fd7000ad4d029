package service

import "errors"

var (
	ErrInternal           = errors.New("internal server error")
	ErrThreadNotFound     = errors.New("thread not found")
	ErrCommentNotFound    = errors.New("comment thread not found")
	ErrReplyNotFound      = errors.New("reply or comment or thread not found")
	ErrLikeTargetNotFound = errors.New("comment or thread not found")
	ErrNotPermitted       = errors.New("not authorized to do this action")
)
