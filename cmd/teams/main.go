package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"team-membership/internal/app"
	"team-membership/internal/config"
	"team-membership/internal/lib/logger"
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(cfg.Env)
	log.Info("starting team membership service",
		slog.String("env", cfg.Env),
		slog.String("storage", cfg.Storage.Driver))

	application := app.MustNew(log, cfg)

	go application.MustRun()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	sig := <-stop
	log.Info("received signal", slog.String("signal", sig.String()))

	application.GracefulShutdown()
	log.Info("application stopped")
}
