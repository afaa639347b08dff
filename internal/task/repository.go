package task

import (
	"context"

	"github.com/suhanimehra131/task-management1/internal/model"
)

// Patch names the fields an update replaces. Nil pointers leave the field
// untouched; ClearDueDate removes the due date (an explicit JSON null).
type Patch struct {
	Title        *string
	Description  *string
	DueDate      *model.Date
	ClearDueDate bool
	IsCompleted  *bool
}

func (p Patch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.DueDate == nil &&
		!p.ClearDueDate && p.IsCompleted == nil
}

type Repository interface {
	Create(ctx context.Context, nt model.NewTask) (model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	Get(ctx context.Context, id string) (model.Task, error)
	Update(ctx context.Context, id string, p Patch) (model.Task, error)
	// Delete is idempotent: removing an absent id is not an error.
	Delete(ctx context.Context, id string) error
}
