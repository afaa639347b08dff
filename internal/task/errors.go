package task

import "errors"

var (
	ErrEmptyTitle = errors.New("title is required")
	ErrNoFields   = errors.New("provide at least one field to update")
)
