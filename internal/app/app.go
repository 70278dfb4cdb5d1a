package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"team-membership/internal/app/rest"
	"team-membership/internal/config"
	v1 "team-membership/internal/http/v1"
	"team-membership/internal/lib/logger/sl"
	"team-membership/internal/lib/migrator"
	"team-membership/internal/lib/validation"
	"team-membership/internal/repo"
	"team-membership/internal/service"
	"team-membership/internal/storage"
	"team-membership/internal/storage/postgresql"
	"team-membership/internal/storage/sqlite"
)

type App struct {
	log     *slog.Logger
	storage *storage.Storage
	restApp *rest.App
}

func MustNew(log *slog.Logger, cfg *config.Config) *App {
	store := mustOpenStorage(log, cfg)

	deps := NewDependencies(log, store)

	restApp := rest.New(
		log,
		deps,
		cfg.Server.Port,
		cfg.Server.Timeout,
		cfg.Server.IdleTimeout,
	)

	return &App{
		log:     log,
		storage: store,
		restApp: restApp,
	}
}

// NewDependencies wires repositories and services over an open storage.
func NewDependencies(log *slog.Logger, store *storage.Storage) *v1.RouterDependencies {
	validator := validation.New()

	teamRepo := repo.NewTeamRepo(store, validator)
	teammateRepo := repo.NewTeammateRepo(store, validator)
	statsRepo := repo.NewStatsRepo(store.GetDB())

	return &v1.RouterDependencies{
		TeamService:     service.NewTeamService(log, teamRepo),
		TeammateService: service.NewTeammateService(log, teammateRepo, validator),
		StatsService:    service.NewStatsService(log, statsRepo),
	}
}

func mustOpenStorage(log *slog.Logger, cfg *config.Config) *storage.Storage {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		if err := migrator.RunMigrations(config.DriverPostgres, cfg.Postgres.DSN(), log); err != nil {
			log.Error("failed to run migrations", sl.Err(err))
			panic(err)
		}
		return postgresql.Init(cfg.Postgres)
	default:
		if err := migrator.RunMigrations(config.DriverSQLite, cfg.SQLite.Path, log); err != nil {
			log.Error("failed to run migrations", sl.Err(err))
			panic(err)
		}
		s, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			log.Error("failed to open storage", sl.Err(err))
			panic(err)
		}
		return s
	}
}

func (a *App) MustRun() {
	const op = "app.MustRun"
	a.log.With(slog.String("op", op)).Info("starting application")

	if err := a.restApp.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

func (a *App) GracefulShutdown() {
	const op = "app.GracefulShutdown"
	log := a.log.With(slog.String("op", op))
	log.Info("shutting down application")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.restApp.Stop(ctx); err != nil {
		log.Error("failed to stop HTTP server", sl.Err(err))
	}

	if a.storage != nil {
		if err := a.storage.Close(); err != nil {
			log.Error("failed to close storage", sl.Err(err))
			return
		}
		log.Info("database connection closed")
	}
}
