package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/suhanimehra131/task-management1/internal/config"
	"github.com/suhanimehra131/task-management1/internal/httpapi"
	"github.com/suhanimehra131/task-management1/internal/observability/jsonlog"
	"github.com/suhanimehra131/task-management1/internal/store/memorystore"
	"github.com/suhanimehra131/task-management1/internal/store/postgres"
	"github.com/suhanimehra131/task-management1/internal/task"
	"github.com/suhanimehra131/task-management1/internal/webui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := jsonlog.New(os.Stdout)

	deps := httpapi.ServerDeps{Logger: logger}

	if cfg.DBURL != "" {
		db, err := sql.Open("pgx", cfg.DBURL)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := db.PingContext(ctx); err != nil {
			cancel()
			log.Fatalf("db ping: %v", err)
		}
		cancel()

		repo := postgres.NewTaskRepo(db)

		ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
		if err := repo.EnsureSchema(ctx); err != nil {
			cancel()
			log.Fatalf("schema: %v", err)
		}
		cancel()

		deps.Service = task.NewService(repo)
		deps.Readier = repo
	} else {
		// Development fallback: tasks live in memory for this process.
		deps.Service = task.NewService(memorystore.NewTaskStore())
	}

	if cfg.Production() {
		deps.UI = webui.Handler()
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewServer(deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", map[string]any{"addr": srv.Addr, "env": cfg.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-rootCtx.Done()
	logger.Info("shutdown signal received", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", map[string]any{"err": err.Error()})
	}
	logger.Info("bye", nil)
}
