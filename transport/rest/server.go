package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const servicePrefix = "/api/connect_four.svc"

type Server struct {
	logger *slog.Logger
	echo   *echo.Echo
}

func New(logger *slog.Logger, games gameUseCase, metrics http.Handler) *Server {
	log := logger.With("component", "rest")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 10 * time.Second
	e.Server.IdleTimeout = 30 * time.Second

	// accept the OData key syntax Games(3) as well as Games/3
	e.Pre(middleware.Rewrite(map[string]string{
		servicePrefix + "/Games(*)*": servicePrefix + "/Games/$1$2",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			log.Debug("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"error", v.Error,
			)
			return nil
		},
	}))

	e.GET("/ping", pingHandler)
	e.GET("/metrics", echo.WrapHandler(metrics))

	handler := newGameHandler(log, games)

	api := e.Group(servicePrefix)
	api.GET("/Games", handler.ListGames)
	api.POST("/Games", handler.CreateGame)
	api.GET("/Games/:id", handler.GetGame)
	api.GET("/Games/:id/moves", handler.History)
	api.POST("/play_move", handler.PlayMove)

	return &Server{
		logger: log,
		echo:   e,
	}
}

// Handler exposes the router, mainly for tests.
func (that *Server) Handler() http.Handler {
	return that.echo
}

// Start blocks until the server stops. A server stopped by Shutdown returns nil.
func (that *Server) Start(port string) error {
	if err := that.echo.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	if err := that.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
