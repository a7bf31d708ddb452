package application

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/connectk-backend/internal/config"
	"github.com/rocketscienceinc/connectk-backend/internal/game"
	"github.com/rocketscienceinc/connectk-backend/internal/metrics"
	"github.com/rocketscienceinc/connectk-backend/internal/repository"
	"github.com/rocketscienceinc/connectk-backend/internal/repository/storage"
	"github.com/rocketscienceinc/connectk-backend/internal/usecase"
	"github.com/rocketscienceinc/connectk-backend/transport/rest"
)

const (
	seedWidth  = 5
	seedHeight = 7
	seedK      = 4
)

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry, err := newRegistry(conf)
	if err != nil {
		return err
	}

	journal, closeJournal, err := newJournal(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeJournal()

	m := metrics.New()
	gameManager := usecase.NewGameManager(logger, registry, journal, m)
	server := rest.New(logger, gameManager, m.Handler())

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort, "games", registry.Count())
		return server.Start(conf.HTTPPort)
	})

	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err = group.Wait(); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application stopped")

	return nil
}

func newRegistry(conf *config.Config) (*repository.GameRegistry, error) {
	if !conf.SeedGame {
		return repository.NewGameRegistry(), nil
	}

	seed, err := game.New(seedWidth, seedHeight, seedK, game.PlayerOne)
	if err != nil {
		return nil, fmt.Errorf("could not create seed game: %w", err)
	}

	return repository.NewGameRegistry(seed), nil
}

// newJournal connects to redis when it is enabled and falls back to a journal that keeps nothing.
func newJournal(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.MoveJournal, func(), error) {
	if !conf.Redis.Enabled {
		log.Info("Redis disabled, moves are not journaled")
		return repository.NewNopJournal(), func() {}, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	// game ids restart with every process, so each process journals under its own namespace
	instanceID := uuid.NewString()
	log.Info("Journaling moves to redis", "addr", conf.Redis.GetRedisAddr(), "instance", instanceID)

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewMoveJournal(redisStorage.Connection, instanceID, conf.Journal.TTL), closeStorage, nil
}
