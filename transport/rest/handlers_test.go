package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectk-backend/internal/entity"
	"github.com/rocketscienceinc/connectk-backend/internal/game"
	"github.com/rocketscienceinc/connectk-backend/internal/metrics"
	"github.com/rocketscienceinc/connectk-backend/internal/repository"
	"github.com/rocketscienceinc/connectk-backend/internal/usecase"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	seed, err := game.New(5, 7, 4, game.PlayerOne)
	require.NoError(t, err)

	m := metrics.New()
	manager := usecase.NewGameManager(logger, repository.NewGameRegistry(seed), repository.NewNopJournal(), m)

	return New(logger, manager, m.Handler()).Handler()
}

func do(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(method, target, reader))

	return recorder
}

func decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var value T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &value))

	return value
}

func TestPing(t *testing.T) {
	recorder := do(t, newTestServer(t), http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "pong", recorder.Body.String())
}

func TestListGames(t *testing.T) {
	// Given: a server with the seed game
	server := newTestServer(t)

	// When: listing games
	recorder := do(t, server, http.MethodGet, "/api/connect_four.svc/Games", "")

	// Then: the seed game is returned with id 0
	require.Equal(t, http.StatusOK, recorder.Code)
	games := decode[[]entity.Game](t, recorder)
	require.Len(t, games, 1)
	assert.Equal(t, entity.Game{
		ID:         0,
		Width:      5,
		Height:     7,
		K:          4,
		CurrPlayer: 1,
		Status:     "InProcess",
		Board:      strings.Repeat("0", 35),
	}, games[0])
}

func TestGetGame(t *testing.T) {
	server := newTestServer(t)

	t.Run("Path key", func(t *testing.T) {
		recorder := do(t, server, http.MethodGet, "/api/connect_four.svc/Games/0", "")

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, int64(0), decode[entity.Game](t, recorder).ID)
	})

	t.Run("OData key", func(t *testing.T) {
		recorder := do(t, server, http.MethodGet, "/api/connect_four.svc/Games(0)", "")

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, int64(5), decode[entity.Game](t, recorder).Width)
	})

	t.Run("Unknown id", func(t *testing.T) {
		recorder := do(t, server, http.MethodGet, "/api/connect_four.svc/Games/7", "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.NotEmpty(t, decode[ErrorResponse](t, recorder).Error)
	})

	t.Run("Non-numeric id", func(t *testing.T) {
		recorder := do(t, server, http.MethodGet, "/api/connect_four.svc/Games/abc", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestCreateGame(t *testing.T) {
	t.Run("Creates and returns the new game", func(t *testing.T) {
		server := newTestServer(t)

		// When: a game is created without a Content-Type header
		recorder := do(t, server, http.MethodPost, "/api/connect_four.svc/Games",
			`{"curr_player": 1, "height": 7, "width": 5, "k": 4}`)

		// Then: it gets id 1 and can be read back
		require.Equal(t, http.StatusCreated, recorder.Code)
		created := decode[entity.Game](t, recorder)
		assert.Equal(t, int64(1), created.ID)

		recorder = do(t, server, http.MethodGet, "/api/connect_four.svc/Games(1)", "")
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, created, decode[entity.Game](t, recorder))
	})

	t.Run("Malformed payloads", func(t *testing.T) {
		cases := map[string]string{
			"empty body":     "",
			"invalid json":   `{"width": `,
			"missing k":      `{"curr_player": 1, "height": 7, "width": 5}`,
			"unknown player": `{"curr_player": 3, "height": 7, "width": 5, "k": 4}`,
			"wrong type":     `{"curr_player": "one", "height": 7, "width": 5, "k": 4}`,
		}

		for name, body := range cases {
			t.Run(name, func(t *testing.T) {
				server := newTestServer(t)

				recorder := do(t, server, http.MethodPost, "/api/connect_four.svc/Games", body)

				assert.Equal(t, http.StatusBadRequest, recorder.Code)

				list := do(t, server, http.MethodGet, "/api/connect_four.svc/Games", "")
				assert.Len(t, decode[[]entity.Game](t, list), 1)
			})
		}
	})
}

func TestPlayMove(t *testing.T) {
	t.Run("Plays a move", func(t *testing.T) {
		server := newTestServer(t)

		// When: player one plays column 0 of the seed game
		recorder := do(t, server, http.MethodPost, "/api/connect_four.svc/play_move", `{"id": 0, "move": 0}`)

		// Then: the response is empty and the board shows the disc
		require.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, recorder.Body.String())

		g := decode[entity.Game](t, do(t, server, http.MethodGet, "/api/connect_four.svc/Games(0)", ""))
		assert.Equal(t, byte('1'), g.Board[0])
		assert.Equal(t, 2, g.CurrPlayer)
		assert.Equal(t, "InProcess", g.Status)
	})

	t.Run("Errors", func(t *testing.T) {
		cases := []struct {
			name   string
			body   string
			status int
		}{
			{"unknown game", `{"id": 9, "move": 0}`, http.StatusNotFound},
			{"column out of range", `{"id": 0, "move": 5}`, http.StatusBadRequest},
			{"negative column", `{"id": 0, "move": -1}`, http.StatusBadRequest},
			{"missing move", `{"id": 0}`, http.StatusBadRequest},
			{"missing id", `{"move": 0}`, http.StatusBadRequest},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				server := newTestServer(t)

				recorder := do(t, server, http.MethodPost, "/api/connect_four.svc/play_move", tc.body)

				assert.Equal(t, tc.status, recorder.Code)
				g := decode[entity.Game](t, do(t, server, http.MethodGet, "/api/connect_four.svc/Games/0", ""))
				assert.Equal(t, strings.Repeat("0", 35), g.Board)
			})
		}
	})

	t.Run("Full column", func(t *testing.T) {
		server := newTestServer(t)
		for i := 0; i < 7; i++ {
			require.Equal(t, http.StatusNoContent,
				do(t, server, http.MethodPost, "/api/connect_four.svc/play_move", `{"id": 0, "move": 2}`).Code)
		}

		recorder := do(t, server, http.MethodPost, "/api/connect_four.svc/play_move", `{"id": 0, "move": 2}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Concurrent moves are all applied", func(t *testing.T) {
		// Given: a 10x10 game where nobody can win with one disc per column
		server := newTestServer(t)
		recorder := do(t, server, http.MethodPost, "/api/connect_four.svc/Games",
			`{"curr_player": 1, "height": 10, "width": 10, "k": 10}`)
		require.Equal(t, http.StatusCreated, recorder.Code)

		// When: ten clients play ten different columns at once
		var wg sync.WaitGroup
		codes := make([]int, 10)
		for column := 0; column < 10; column++ {
			column := column
			wg.Add(1)
			go func() {
				defer wg.Done()
				body := `{"id": 1, "move": ` + string(rune('0'+column)) + `}`
				codes[column] = do(t, server, http.MethodPost, "/api/connect_four.svc/play_move", body).Code
			}()
		}
		wg.Wait()

		// Then: every move was accepted and the board holds ten discs
		for _, code := range codes {
			assert.Equal(t, http.StatusNoContent, code)
		}
		g := decode[entity.Game](t, do(t, server, http.MethodGet, "/api/connect_four.svc/Games/1", ""))
		assert.Equal(t, 10, strings.Count(g.Board, "1")+strings.Count(g.Board, "2"))
	})
}

func TestHistory(t *testing.T) {
	server := newTestServer(t)

	t.Run("Journal disabled gives an empty history", func(t *testing.T) {
		recorder := do(t, server, http.MethodGet, "/api/connect_four.svc/Games/0/moves", "")

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, decode[[]entity.Move](t, recorder))
	})

	t.Run("Unknown id", func(t *testing.T) {
		recorder := do(t, server, http.MethodGet, "/api/connect_four.svc/Games(3)/moves", "")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	server := newTestServer(t)
	do(t, server, http.MethodPost, "/api/connect_four.svc/play_move", `{"id": 0, "move": 0}`)

	recorder := do(t, server, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "connectk_moves_accepted_total 1")
}
