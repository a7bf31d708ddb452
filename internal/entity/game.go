package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/connectk-backend/internal/game"
)

const (
	StatusInProcess    = "InProcess"
	StatusPlayerOneWin = "PlayerOneWin"
	StatusPlayerTwoWin = "PlayerTwoWin"
	StatusTie          = "Tie"

	PlayerOne = 1
	PlayerTwo = 2
)

var ErrUnknownPlayer = errors.New("unknown player number")

// Game is the wire representation of a game.
type Game struct {
	ID         int64  `json:"id"`
	Width      int64  `json:"width"`
	Height     int64  `json:"height"`
	K          int64  `json:"k"`
	CurrPlayer int    `json:"curr_player"`
	Status     string `json:"status"`
	Board      string `json:"board"`
}

// Move is one accepted move as recorded in the journal.
type Move struct {
	GameID   int64     `json:"game_id"`
	Ply      int       `json:"ply"`
	Player   int       `json:"player"`
	Column   int       `json:"column"`
	Row      int       `json:"row"`
	Status   string    `json:"status"`
	PlayedAt time.Time `json:"played_at"`
}

func NewGame(id int, g *game.Game) *Game {
	return &Game{
		ID:         int64(id),
		Width:      int64(g.Width),
		Height:     int64(g.Height),
		K:          int64(g.K),
		CurrPlayer: PlayerNumber(g.CurrentPlayer),
		Status:     StatusName(g.Status),
		Board:      g.Linearize(),
	}
}

// NewGames converts a registry snapshot, deriving each id from its position.
func NewGames(games []*game.Game) []*Game {
	result := make([]*Game, 0, len(games))
	for id, g := range games {
		result = append(result, NewGame(id, g))
	}

	return result
}

func NewMove(id int, ply int, move game.Move, status game.Status, playedAt time.Time) *Move {
	return &Move{
		GameID:   int64(id),
		Ply:      ply,
		Player:   PlayerNumber(move.Player),
		Column:   move.Column,
		Row:      move.Row,
		Status:   StatusName(status),
		PlayedAt: playedAt,
	}
}

func PlayerNumber(player game.Player) int {
	if player == game.PlayerTwo {
		return PlayerTwo
	}
	return PlayerOne
}

func PlayerFromNumber(number int64) (game.Player, error) {
	switch number {
	case PlayerOne:
		return game.PlayerOne, nil
	case PlayerTwo:
		return game.PlayerTwo, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownPlayer, number)
	}
}

func StatusName(status game.Status) string {
	switch status {
	case game.PlayerOneWin:
		return StatusPlayerOneWin
	case game.PlayerTwoWin:
		return StatusPlayerTwoWin
	case game.Tie:
		return StatusTie
	default:
		return StatusInProcess
	}
}

// NewGameRequest is the creation payload. Fields are pointers so that missing ones can be told apart from zero.
type NewGameRequest struct {
	Width      *int64 `json:"width"`
	Height     *int64 `json:"height"`
	K          *int64 `json:"k"`
	CurrPlayer *int64 `json:"curr_player"`
}

// PlayMoveRequest is the payload of the play_move action.
type PlayMoveRequest struct {
	ID   *int64 `json:"id"`
	Move *int64 `json:"move"`
}
