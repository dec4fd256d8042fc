package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jasimjamil/course-feedbig-system/internal/config"
	"github.com/jasimjamil/course-feedbig-system/internal/database"
	"github.com/jasimjamil/course-feedbig-system/internal/logger"
	"github.com/jasimjamil/course-feedbig-system/internal/store"
	"github.com/rs/zerolog"
)

// Migrates the schema, seeds the default course catalogue and reports the
// store health.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, &log, loggerService)
	stop()
	loggerService.Shutdown()

	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *zerolog.Logger, loggerService *logger.LoggerService) error {
	if cfg.Primary.Env != "local" {
		if err := database.Migrate(ctx, log, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	s, err := store.New(ctx, cfg, log, loggerService)
	if err != nil {
		return err
	}
	// Telemetry is flushed by main after run returns.
	defer s.DB.Close()

	inserted, err := s.SeedDefaultCourses(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed default courses: %w", err)
	}
	log.Info().Int64("inserted", inserted).Msg("default courses seeded")

	health := s.Health(ctx)
	if !health.Healthy() {
		return errors.New(health.Error)
	}
	log.Info().
		Str("status", health.Status).
		Dur("response_time", health.ResponseTime).
		Msg("store ready")
	return nil
}
