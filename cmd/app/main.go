package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"deliveryquery/cmd"
	httpin "deliveryquery/internal/adapters/in/http"
	"deliveryquery/internal/adapters/out/postgres"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

// run owns every resource of the process, so its deferred cleanups always
// execute before main exits.
func run() error {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		return fmt.Errorf("error loading .env file: %w", err)
	}
	logger := configs.Logger()

	db, err := postgres.Open(configs.Database().DSN())
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer sqlDB.Close()

	if err = postgres.Migrate(db); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	app := cmd.NewCompositionRoot(configs, db, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("error starting jobs: %w", err)
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e, err := httpin.NewRouter(app.CreateServer(), logger)
	if err != nil {
		return fmt.Errorf("error building router: %w", err)
	}
	return serve(ctx, e, fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort), logger)
}

// serve runs e until ctx is done or the listener fails, then shuts it down.
// A listener failure is returned; a shutdown triggered by ctx is not an error.
func serve(ctx context.Context, e *echo.Echo, address string, logger *slog.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var err error
	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
	case err = <-serverErr:
		err = fmt.Errorf("error starting web server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error("Web server shutdown failed", "error", shutdownErr)
	}
	return err
}
