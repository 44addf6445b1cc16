package apperr

import "errors"

var (
	ErrUsage         = errors.New("usage")
	ErrInvalidName   = errors.New("invalid note name")
	ErrAlreadyExists = errors.New("already exists")
)
