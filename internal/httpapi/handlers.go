package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/suhanimehra131/task-management1/internal/model"
	"github.com/suhanimehra131/task-management1/internal/task"
)

type createTaskRequest struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	DueDate     *model.Date `json:"dueDate"`
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.deps.Service.Create(r.Context(), model.NewTask{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		if errors.Is(err, task.ErrEmptyTitle) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.storeError(w, r, "create task", err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.deps.Service.List(r.Context())
	if err != nil {
		s.storeError(w, r, "list tasks", err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	found, err := s.deps.Service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			writeError(w, http.StatusNotFound, "task not found")
			return
		}
		s.storeError(w, r, "get task", err)
		return
	}
	writeJSON(w, http.StatusOK, found)
}

// optionalDate distinguishes an absent dueDate from an explicit null:
// UnmarshalJSON only runs when the field is present.
type optionalDate struct {
	present bool
	value   *model.Date
}

func (o *optionalDate) UnmarshalJSON(b []byte) error {
	o.present = true
	if string(b) == "null" {
		return nil
	}
	var d model.Date
	if err := json.Unmarshal(b, &d); err != nil {
		return err
	}
	o.value = &d
	return nil
}

type updateTaskRequest struct {
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	DueDate     optionalDate `json:"dueDate"`
	IsCompleted *bool        `json:"isCompleted"`
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var req updateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	patch := task.Patch{
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      req.DueDate.value,
		ClearDueDate: req.DueDate.present && req.DueDate.value == nil,
		IsCompleted:  req.IsCompleted,
	}

	updated, err := s.deps.Service.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		if errors.Is(err, task.ErrEmptyTitle) || errors.Is(err, task.ErrNoFields) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, model.ErrNotFound) {
			writeError(w, http.StatusNotFound, "task not found")
			return
		}
		s.storeError(w, r, "update task", err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Service.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.storeError(w, r, "delete task", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) storeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if s.deps.Logger != nil {
		s.deps.Logger.Error("store_error", map[string]any{
			"rid": RequestIDFromContext(r.Context()),
			"op":  op,
			"err": err.Error(),
		})
	}
	writeError(w, http.StatusInternalServerError, "internal error")
}
