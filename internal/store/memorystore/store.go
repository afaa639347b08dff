// Package memorystore keeps tasks in a mutex-guarded map. It backs
// development mode (no DB_URL) and the full-stack tests.
package memorystore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/suhanimehra131/task-management1/internal/model"
	"github.com/suhanimehra131/task-management1/internal/task"
)

type TaskStore struct {
	mu    sync.RWMutex
	tasks map[string]model.Task
}

func NewTaskStore() *TaskStore {
	return &TaskStore{tasks: make(map[string]model.Task)}
}

func (s *TaskStore) Create(ctx context.Context, nt model.NewTask) (model.Task, error) {
	valid, err := task.ValidateTitle(nt.Title)
	if err != nil {
		return model.Task{}, err
	}

	t := model.Task{
		ID:          uuid.NewString(),
		Title:       valid,
		Description: nt.Description,
		DueDate:     nt.DueDate,
		IsCompleted: false,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[t.ID] = t
	return t, nil
}

func (s *TaskStore) List(ctx context.Context) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *TaskStore) Get(ctx context.Context, id string) (model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return model.Task{}, model.ErrNotFound
	}
	return t, nil
}

func (s *TaskStore) Update(ctx context.Context, id string, p task.Patch) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return model.Task{}, model.ErrNotFound
	}

	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.ClearDueDate {
		t.DueDate = nil
	} else if p.DueDate != nil {
		due := *p.DueDate
		t.DueDate = &due
	}
	if p.IsCompleted != nil {
		t.IsCompleted = *p.IsCompleted
	}

	s.tasks[id] = t
	return t, nil
}

func (s *TaskStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tasks, id)
	return nil
}
