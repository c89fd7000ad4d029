package handler

import "errors"

var (
	errNotAuthorized   = errors.New("user is not authorized")
	errInvalidThreadID = errors.New("invalid thread ID")
	errInvalidID       = errors.New("invalid ID")
)
