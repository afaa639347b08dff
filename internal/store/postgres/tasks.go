package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/suhanimehra131/task-management1/internal/model"
	"github.com/suhanimehra131/task-management1/internal/task"
)

type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

// EnsureSchema creates the tasks table if it does not exist. There is no
// migration history to maintain; the schema is a single table.
func (r *TaskRepo) EnsureSchema(ctx context.Context) error {
	const q = `
CREATE TABLE IF NOT EXISTS tasks (
    id           TEXT PRIMARY KEY,
    title        TEXT NOT NULL CHECK (title <> ''),
    description  TEXT NOT NULL DEFAULT '',
    due_date     DATE,
    is_completed BOOLEAN NOT NULL DEFAULT FALSE,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
`
	if _, err := r.db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (r *TaskRepo) Create(ctx context.Context, nt model.NewTask) (model.Task, error) {
	valid, err := task.ValidateTitle(nt.Title)
	if err != nil {
		return model.Task{}, err
	}

	const q = `
INSERT INTO tasks (id, title, description, due_date, is_completed, created_at)
VALUES ($1, $2, $3, $4, FALSE, $5)
RETURNING id, title, description, due_date, is_completed, created_at;
`
	var due any
	if nt.DueDate != nil {
		due = *nt.DueDate
	}
	row := r.db.QueryRowContext(ctx, q,
		uuid.NewString(), valid, nt.Description, due, time.Now().UTC())
	return scanTask(row)
}

func (r *TaskRepo) List(ctx context.Context) ([]model.Task, error) {
	const q = `
SELECT id, title, description, due_date, is_completed, created_at
FROM tasks
ORDER BY created_at, id;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TaskRepo) Get(ctx context.Context, id string) (model.Task, error) {
	const q = `
SELECT id, title, description, due_date, is_completed, created_at
FROM tasks
WHERE id = $1;
`
	t, err := scanTask(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, err
	}
	return t, nil
}

func (r *TaskRepo) Update(ctx context.Context, id string, p task.Patch) (model.Task, error) {
	set := make([]string, 0, 4)
	args := make([]any, 0, 5)
	args = append(args, id)

	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if p.Title != nil {
		add("title", *p.Title)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.ClearDueDate {
		set = append(set, "due_date = NULL")
	} else if p.DueDate != nil {
		add("due_date", *p.DueDate)
	}
	if p.IsCompleted != nil {
		add("is_completed", *p.IsCompleted)
	}
	if len(set) == 0 {
		return r.Get(ctx, id)
	}

	q := fmt.Sprintf(`
UPDATE tasks
SET %s
WHERE id = $1
RETURNING id, title, description, due_date, is_completed, created_at;
`, strings.Join(set, ", "))

	t, err := scanTask(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, err
	}
	return t, nil
}

// Delete is a no-op for an absent id; the row count is not surfaced.
func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM tasks WHERE id = $1;`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

func (r *TaskRepo) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()
	return r.db.PingContext(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t   model.Task
		due sql.Null[model.Date]
	)
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&due,
		&t.IsCompleted,
		&t.CreatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}
	if due.Valid {
		t.DueDate = &due.V
	}
	t.CreatedAt = t.CreatedAt.UTC()
	return t, nil
}
