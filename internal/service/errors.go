package service

import "errors"

var (
	ErrStorageFailure  = errors.New("storage failure")
	ErrChatUnavailable = errors.New("chat service unavailable")
	ErrInvalidOutcome  = errors.New("invalid interview outcome")
)
