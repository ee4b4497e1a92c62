package store

import "errors"

var (
	ErrInvalidDraft = errors.New("invalid draft")
	ErrNotFound     = errors.New("post not found")
)
