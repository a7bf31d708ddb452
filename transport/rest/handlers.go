package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/connectk-backend/internal/apperror"
	"github.com/rocketscienceinc/connectk-backend/internal/entity"
)

var errMissingField = errors.New("missing field")

type gameUseCase interface {
	CreateGame(ctx context.Context, req *entity.NewGameRequest) (*entity.Game, error)
	GetGame(ctx context.Context, id int64) (*entity.Game, error)
	ListGames(ctx context.Context) []*entity.Game
	PlayMove(ctx context.Context, id int64, column int64) error
	History(ctx context.Context, id int64) ([]*entity.Move, error)
}

type gameHandler struct {
	logger *slog.Logger
	games  gameUseCase
}

func newGameHandler(logger *slog.Logger, games gameUseCase) *gameHandler {
	return &gameHandler{
		logger: logger,
		games:  games,
	}
}

func (that *gameHandler) ListGames(c echo.Context) error {
	return c.JSON(http.StatusOK, that.games.ListGames(c.Request().Context()))
}

func (that *gameHandler) GetGame(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return that.respondError(c, err)
	}

	game, err := that.games.GetGame(c.Request().Context(), id)
	if err != nil {
		return that.respondError(c, err)
	}

	return c.JSON(http.StatusOK, game)
}

func (that *gameHandler) CreateGame(c echo.Context) error {
	var req entity.NewGameRequest
	if err := decodeBody(c, &req); err != nil {
		return that.respondError(c, err)
	}

	game, err := that.games.CreateGame(c.Request().Context(), &req)
	if err != nil {
		return that.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, game)
}

func (that *gameHandler) PlayMove(c echo.Context) error {
	var req entity.PlayMoveRequest
	if err := decodeBody(c, &req); err != nil {
		return that.respondError(c, err)
	}

	if req.ID == nil || req.Move == nil {
		return that.respondError(c, fmt.Errorf("%w: %w: id and move are required", apperror.ErrMalformedInput, errMissingField))
	}

	if err := that.games.PlayMove(c.Request().Context(), *req.ID, *req.Move); err != nil {
		return that.respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (that *gameHandler) History(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return that.respondError(c, err)
	}

	moves, err := that.games.History(c.Request().Context(), id)
	if err != nil {
		return that.respondError(c, err)
	}

	return c.JSON(http.StatusOK, moves)
}

func (that *gameHandler) respondError(c echo.Context, err error) error {
	var status int

	switch {
	case errors.Is(err, apperror.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidParameter), errors.Is(err, apperror.ErrMalformedInput):
		status = http.StatusBadRequest
	default:
		that.logger.Error("request failed", "path", c.Path(), "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)})
	}

	return c.JSON(status, ErrorResponse{Error: err.Error()})
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: game id %q", apperror.ErrMalformedInput, c.Param("id"))
	}

	return id, nil
}

// decodeBody reads a JSON body regardless of the Content-Type header.
func decodeBody(c echo.Context, target any) error {
	if err := c.Echo().JSONSerializer.Deserialize(c, target); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrMalformedInput, err)
	}

	return nil
}
