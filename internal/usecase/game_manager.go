package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/connectk-backend/internal/apperror"
	"github.com/rocketscienceinc/connectk-backend/internal/entity"
	"github.com/rocketscienceinc/connectk-backend/internal/game"
	"github.com/rocketscienceinc/connectk-backend/internal/metrics"
	"github.com/rocketscienceinc/connectk-backend/internal/repository"
)

var errMissingField = errors.New("missing field")

type gameRegistry interface {
	Insert(g *game.Game) int
	Select(id int) (*game.Game, error)
	SelectAll() []*game.Game
	MutateAt(id int, mutate func(g *game.Game) error) error
	Count() int
}

type moveJournal interface {
	Append(ctx context.Context, move *entity.Move) error
	List(ctx context.Context, gameID int64) ([]*entity.Move, error)
}

// GameManager turns API requests into registry and engine calls.
type GameManager struct {
	logger *slog.Logger

	registry gameRegistry
	journal  moveJournal
	metrics  *metrics.Metrics
}

func NewGameManager(logger *slog.Logger, registry gameRegistry, journal moveJournal, m *metrics.Metrics) *GameManager {
	m.GamesStored.Set(float64(registry.Count()))

	return &GameManager{
		logger: logger.With("component", "game_manager"),

		registry: registry,
		journal:  journal,
		metrics:  m,
	}
}

func (that *GameManager) CreateGame(_ context.Context, req *entity.NewGameRequest) (*entity.Game, error) {
	if req.Width == nil || req.Height == nil || req.K == nil || req.CurrPlayer == nil {
		return nil, fmt.Errorf("%w: %w: width, height, k and curr_player are required", apperror.ErrMalformedInput, errMissingField)
	}

	player, err := entity.PlayerFromNumber(*req.CurrPlayer)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedInput, err)
	}

	newGame, err := game.New(int(*req.Width), int(*req.Height), int(*req.K), player)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedInput, err)
	}

	id := that.registry.Insert(newGame)

	that.metrics.GamesCreated.Inc()
	that.metrics.GamesStored.Set(float64(that.registry.Count()))

	that.logger.Info("game created", "id", id, "width", newGame.Width, "height", newGame.Height, "k", newGame.K)

	return entity.NewGame(id, newGame), nil
}

func (that *GameManager) GetGame(_ context.Context, id int64) (*entity.Game, error) {
	existingGame, err := that.registry.Select(int(id))
	if err != nil {
		return nil, that.mapRegistryError(err)
	}

	return entity.NewGame(int(id), existingGame), nil
}

func (that *GameManager) ListGames(_ context.Context) []*entity.Game {
	return entity.NewGames(that.registry.SelectAll())
}

// PlayMove applies a move for whoever's turn it is in game id.
func (that *GameManager) PlayMove(ctx context.Context, id int64, column int64) error {
	log := that.logger.With("method", "PlayMove", "id", id, "column", column)

	var (
		move   game.Move
		ply    int
		status game.Status
	)

	err := that.registry.MutateAt(int(id), func(g *game.Game) error {
		applied, err := g.ApplyMove(int(column))
		if err != nil {
			return err
		}

		move, ply, status = applied, g.Occupied(), g.Status
		return nil
	})
	if err != nil {
		if reason, ok := rejectionReason(err); ok {
			that.metrics.MovesRejected.WithLabelValues(reason).Inc()
			log.Debug("move rejected", "reason", reason)

			return fmt.Errorf("%w: %w", apperror.ErrInvalidParameter, err)
		}

		return that.mapRegistryError(err)
	}

	that.metrics.MovesAccepted.Inc()
	if status.IsTerminal() {
		that.metrics.GamesFinished.WithLabelValues(entity.StatusName(status)).Inc()
		log.Info("game finished", "status", status)
	}

	// the move is committed already, a journal failure only costs history
	record := entity.NewMove(int(id), ply, move, status, time.Now().UTC())
	if err = that.journal.Append(ctx, record); err != nil {
		log.Error("failed to journal move", "error", err)
	}

	return nil
}

// History returns the journaled moves of game id in play order.
func (that *GameManager) History(ctx context.Context, id int64) ([]*entity.Move, error) {
	if _, err := that.registry.Select(int(id)); err != nil {
		return nil, that.mapRegistryError(err)
	}

	moves, err := that.journal.List(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	return moves, nil
}

func (that *GameManager) mapRegistryError(err error) error {
	if errors.Is(err, repository.ErrGameNotFound) {
		return fmt.Errorf("%w: %w", apperror.ErrNotFound, err)
	}

	return err
}

func rejectionReason(err error) (string, bool) {
	switch {
	case errors.Is(err, game.ErrInvalidColumn):
		return "invalid_column", true
	case errors.Is(err, game.ErrColumnFull):
		return "column_full", true
	case errors.Is(err, game.ErrGameOver):
		return "game_over", true
	default:
		return "", false
	}
}
