package repository

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/connectk-backend/internal/game"
)

var ErrGameNotFound = errors.New("game not found")

// GameRegistry keeps every game of the process. A game's id is its insertion
// index; nothing is ever removed, so ids stay stable for the registry's lifetime.
type GameRegistry struct {
	mu    sync.Mutex
	games []*game.Game
}

func NewGameRegistry(seed ...*game.Game) *GameRegistry {
	registry := &GameRegistry{
		games: make([]*game.Game, 0, len(seed)),
	}

	for _, g := range seed {
		registry.games = append(registry.games, g.Clone())
	}

	return registry
}

// Insert stores a copy of g and returns its id.
func (that *GameRegistry) Insert(g *game.Game) int {
	stored := g.Clone()

	that.mu.Lock()
	defer that.mu.Unlock()

	that.games = append(that.games, stored)

	return len(that.games) - 1
}

// Select returns a copy of the game stored under id.
func (that *GameRegistry) Select(id int) (*game.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.contains(id) {
		return nil, fmt.Errorf("%w: id %d", ErrGameNotFound, id)
	}

	return that.games[id].Clone(), nil
}

// SelectAll returns copies of all games in id order.
func (that *GameRegistry) SelectAll() []*game.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	games := make([]*game.Game, len(that.games))
	for i, g := range that.games {
		games[i] = g.Clone()
	}

	return games
}

// MutateAt runs mutate on the stored game while holding the registry lock.
// mutate must not keep the pointer after it returns.
func (that *GameRegistry) MutateAt(id int, mutate func(g *game.Game) error) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.contains(id) {
		return fmt.Errorf("%w: id %d", ErrGameNotFound, id)
	}

	return mutate(that.games[id])
}

func (that *GameRegistry) Count() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.games)
}

func (that *GameRegistry) contains(id int) bool {
	return id >= 0 && id < len(that.games)
}
