package memorystore

import (
	"context"
	"errors"
	"testing"

	"github.com/suhanimehra131/task-management1/internal/model"
	"github.com/suhanimehra131/task-management1/internal/task"
)

func TestCreate_AssignsIDAndDefaults(t *testing.T) {
	s := NewTaskStore()
	ctx := context.Background()

	created, err := s.Create(ctx, model.NewTask{Title: "  Write report  "})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == "" {
		t.Fatalf("expected id")
	}
	if created.Title != "Write report" {
		t.Fatalf("title=%q, want trimmed", created.Title)
	}
	if created.IsCompleted {
		t.Fatalf("expected isCompleted=false")
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt")
	}

	other, err := s.Create(ctx, model.NewTask{Title: "Write report"})
	if err != nil {
		t.Fatal(err)
	}
	if other.ID == created.ID {
		t.Fatalf("ids must be unique")
	}
}

func TestCreate_RejectsEmptyTitle(t *testing.T) {
	s := NewTaskStore()

	_, err := s.Create(context.Background(), model.NewTask{Title: "   "})
	if !errors.Is(err, task.ErrEmptyTitle) {
		t.Fatalf("err=%v, want ErrEmptyTitle", err)
	}
}

func TestUpdate_ReplacesOnlyNamedFields(t *testing.T) {
	s := NewTaskStore()
	ctx := context.Background()

	due := model.NewDate(2026, 9, 15)
	created, err := s.Create(ctx, model.NewTask{Title: "Original", Description: "desc", DueDate: &due})
	if err != nil {
		t.Fatal(err)
	}

	completed := true
	updated, err := s.Update(ctx, created.ID, task.Patch{IsCompleted: &completed})
	if err != nil {
		t.Fatal(err)
	}
	if !updated.IsCompleted {
		t.Fatalf("expected isCompleted=true")
	}
	if updated.Title != "Original" || updated.Description != "desc" {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}
	if updated.DueDate == nil || !updated.DueDate.Equal(due) {
		t.Fatalf("dueDate changed: %v", updated.DueDate)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("createdAt changed")
	}
}

func TestUpdate_ClearDueDate(t *testing.T) {
	s := NewTaskStore()
	ctx := context.Background()

	due := model.NewDate(2026, 9, 15)
	created, err := s.Create(ctx, model.NewTask{Title: "Dated", DueDate: &due})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := s.Update(ctx, created.ID, task.Patch{ClearDueDate: true})
	if err != nil {
		t.Fatal(err)
	}
	if updated.DueDate != nil {
		t.Fatalf("expected dueDate cleared, got %v", updated.DueDate)
	}
}

func TestUpdate_UnknownID(t *testing.T) {
	s := NewTaskStore()

	title := "X"
	_, err := s.Update(context.Background(), "nope", task.Patch{Title: &title})
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestDelete_IdempotentAndRemoves(t *testing.T) {
	s := NewTaskStore()
	ctx := context.Background()

	created, err := s.Create(ctx, model.NewTask{Title: "Doomed"})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Delete(ctx, created.ID); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, created.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}

	tasks, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	for _, tk := range tasks {
		if tk.ID == created.ID {
			t.Fatalf("deleted task still listed")
		}
	}
}

func TestList_OrderedByCreation(t *testing.T) {
	s := NewTaskStore()
	ctx := context.Background()

	first, err := s.Create(ctx, model.NewTask{Title: "First"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Create(ctx, model.NewTask{Title: "Second"})
	if err != nil {
		t.Fatal(err)
	}

	tasks, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].CreatedAt.After(tasks[1].CreatedAt) {
		t.Fatalf("list not ordered by createdAt: %v, %v", first.ID, second.ID)
	}
}
