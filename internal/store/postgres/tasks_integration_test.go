package postgres

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/suhanimehra131/task-management1/internal/model"
	"github.com/suhanimehra131/task-management1/internal/task"
)

func newTestRepo(t *testing.T) *TaskRepo {
	t.Helper()

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		t.Skip("DB_URL not set (integration test)")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	repo := NewTaskRepo(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatal(err)
	}
	return repo
}

func TestCreateUpdateDelete_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	due := model.NewDate(2026, 9, 15)
	created, err := repo.Create(ctx, model.NewTask{
		Title:       "integration task",
		Description: "keep",
		DueDate:     &due,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = repo.Delete(ctx, created.ID) })

	if created.ID == "" || created.CreatedAt.IsZero() || created.IsCompleted {
		t.Fatalf("bad defaults: %+v", created)
	}
	if created.DueDate == nil || !created.DueDate.Equal(due) {
		t.Fatalf("dueDate=%v", created.DueDate)
	}

	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "integration task" || got.Description != "keep" {
		t.Fatalf("got %+v", got)
	}

	completed := true
	updated, err := repo.Update(ctx, created.ID, task.Patch{IsCompleted: &completed, ClearDueDate: true})
	if err != nil {
		t.Fatal(err)
	}
	if !updated.IsCompleted || updated.DueDate != nil {
		t.Fatalf("updated %+v", updated)
	}
	if updated.Title != "integration task" {
		t.Fatalf("unrelated field changed: %q", updated.Title)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatal(err)
	}
	// Idempotent
	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}

	if _, err := repo.Get(ctx, created.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestUpdate_UnknownIDReportsNotFound(t *testing.T) {
	repo := newTestRepo(t)

	title := "X"
	_, err := repo.Update(context.Background(), "no-such-id", task.Patch{Title: &title})
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}
