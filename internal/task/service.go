package task

import (
	"context"

	"github.com/suhanimehra131/task-management1/internal/model"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, nt model.NewTask) (model.Task, error) {
	valid, err := ValidateTitle(nt.Title)
	if err != nil {
		return model.Task{}, err
	}
	nt.Title = valid
	return s.repo.Create(ctx, nt)
}

func (s *Service) List(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (model.Task, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, p Patch) (model.Task, error) {
	if p.Empty() {
		return model.Task{}, ErrNoFields
	}

	if p.Title != nil {
		valid, err := ValidateTitle(*p.Title)
		if err != nil {
			return model.Task{}, err
		}
		p.Title = &valid
	}

	return s.repo.Update(ctx, id, p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
