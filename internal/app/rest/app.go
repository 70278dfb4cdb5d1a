package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	v1 "team-membership/internal/http/v1"
)

type App struct {
	log        *slog.Logger
	httpServer *http.Server
}

func New(
	log *slog.Logger,
	deps *v1.RouterDependencies,
	port string,
	timeout time.Duration,
	idleTimeout time.Duration,
) *App {
	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      v1.NewHandler(deps, log),
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		IdleTimeout:  idleTimeout,
	}

	return &App{
		log:        log,
		httpServer: httpServer,
	}
}

func (a *App) Run() error {
	const op = "app.rest.Run"
	a.log.With(slog.String("op", op)).Info("starting REST server", "addr", a.httpServer.Addr)
	return a.httpServer.ListenAndServe()
}

func (a *App) Stop(ctx context.Context) error {
	const op = "app.rest.Stop"
	a.log.With(slog.String("op", op)).Info("stopping REST server")
	return a.httpServer.Shutdown(ctx)
}
