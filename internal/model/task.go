package model

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("task not found")

type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     *Date     `json:"dueDate,omitempty"`
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewTask holds the caller-supplied fields of a task about to be created.
// The store assigns ID and CreatedAt.
type NewTask struct {
	Title       string
	Description string
	DueDate     *Date
}
