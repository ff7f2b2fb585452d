package utils

import "errors"

var (
	ErrPostNotFound       = errors.New("post not found")
	ErrInvalidPostID      = errors.New("invalid post id")
	ErrInvalidSentiment   = errors.New("invalid sentiment")
	ErrDuplicateFeedback  = errors.New("feedback already recorded for this post")
	ErrSessionExpired     = errors.New("session could not be resolved")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrDatabaseError      = errors.New("database error")
)
