// Package httpapi maps the REST surface onto the task service: four verbs
// on /api/tasks plus health probes and, in production, the embedded UI.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/suhanimehra131/task-management1/internal/observability/jsonlog"
	"github.com/suhanimehra131/task-management1/internal/task"
)

const requestTimeout = 5 * time.Second

// Readier reports whether the backing store is reachable. A nil Readier
// means the store needs no connectivity check (in-memory).
type Readier interface {
	Ping(ctx context.Context) error
}

type ServerDeps struct {
	Service *task.Service
	Logger  *jsonlog.Logger
	Readier Readier
	// UI, when set, handles everything outside /api (static assets with
	// an index.html fallback).
	UI http.Handler
}

type Server struct {
	deps    ServerDeps
	handler http.Handler
}

func NewServer(deps ServerDeps) *Server {
	srv := &Server{deps: deps}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", srv.handleHealthz)
	mux.HandleFunc("GET /readyz", srv.handleReadyz)

	mux.HandleFunc("POST /api/tasks", srv.handleCreateTask)
	mux.HandleFunc("GET /api/tasks", srv.handleListTasks)
	mux.HandleFunc("GET /api/tasks/{id}", srv.handleGetTask)
	mux.HandleFunc("PUT /api/tasks/{id}", srv.handleUpdateTask)
	mux.HandleFunc("DELETE /api/tasks/{id}", srv.handleDeleteTask)

	if deps.UI != nil {
		mux.Handle("/", deps.UI)
	}

	srv.handler = WithRequestID()(
		Logging(deps.Logger)(
			CORS()(
				Timeout(requestTimeout)(
					mux,
				),
			),
		),
	)
	return srv
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if s.deps.Readier != nil {
		if err := s.deps.Readier.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "store unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
