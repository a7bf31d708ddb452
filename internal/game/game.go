package game

import (
	"errors"
	"fmt"
	"strings"
)

// MaxCells bounds the board area accepted by New.
const MaxCells = 1 << 16

var (
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrInvalidPlayer     = errors.New("invalid player")
	ErrInvalidColumn     = errors.New("invalid column")
	ErrColumnFull        = errors.New("column is full")
	ErrGameOver          = errors.New("game is already over")

	// directions scanned through the placed disc: horizontal, vertical and both diagonals.
	directions = [4][2]int{
		{0, 1},
		{1, 0},
		{1, 1},
		{1, -1},
	}
)

// Move describes an accepted drop.
type Move struct {
	Player Player
	Column int
	Row    int
}

// New creates an empty width x height board where k aligned discs win.
func New(width, height, k int, firstPlayer Player) (*Game, error) {
	if width <= 0 || height <= 0 || width > MaxCells || height > MaxCells || width*height > MaxCells {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	if k <= 0 || k > max(width, height) {
		return nil, fmt.Errorf("%w: k=%d does not fit %dx%d", ErrInvalidDimensions, k, width, height)
	}

	if !firstPlayer.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPlayer, firstPlayer)
	}

	return &Game{
		Width:         width,
		Height:        height,
		K:             k,
		CurrentPlayer: firstPlayer,
		Status:        InProgress,
		cells:         make([]Cell, width*height),
	}, nil
}

// Clone returns a deep copy that shares no memory with the receiver.
func (that *Game) Clone() *Game {
	clone := *that
	clone.cells = make([]Cell, len(that.cells))
	copy(clone.cells, that.cells)

	return &clone
}

// Cell returns the state at (row, col), row 0 being the bottom row.
func (that *Game) Cell(row, col int) Cell {
	return that.cells[row*that.Width+col]
}

// Occupied counts the discs on the board.
func (that *Game) Occupied() int {
	count := 0
	for _, cell := range that.cells {
		if cell != Empty {
			count++
		}
	}

	return count
}

func (that *Game) IsFinished() bool {
	return that.Status.IsTerminal()
}

// Linearize flattens the board row by row from the bottom row up,
// writing '0' for an empty cell, '1' and '2' for the players' discs.
func (that *Game) Linearize() string {
	var sb strings.Builder
	sb.Grow(len(that.cells))

	for _, cell := range that.cells {
		sb.WriteByte('0' + byte(cell))
	}

	return sb.String()
}

// ApplyMove drops the current player's disc into column.
// A rejected move leaves the game untouched.
func (that *Game) ApplyMove(column int) (Move, error) {
	if that.IsFinished() {
		return Move{}, fmt.Errorf("%w: %s", ErrGameOver, that.Status)
	}

	if column < 0 || column >= that.Width {
		return Move{}, fmt.Errorf("%w: %d", ErrInvalidColumn, column)
	}

	row := that.lowestEmptyRow(column)
	if row < 0 {
		return Move{}, fmt.Errorf("%w: %d", ErrColumnFull, column)
	}

	player := that.CurrentPlayer
	that.cells[row*that.Width+column] = player.Mark()

	switch {
	case that.isWinningDrop(row, column):
		that.Status = winFor(player)
	case that.isBoardFull():
		that.Status = Tie
	default:
		that.CurrentPlayer = player.Opponent()
	}

	return Move{Player: player, Column: column, Row: row}, nil
}

func (that *Game) lowestEmptyRow(column int) int {
	for row := 0; row < that.Height; row++ {
		if that.Cell(row, column) == Empty {
			return row
		}
	}

	return -1
}

// isWinningDrop counts matching discs on both sides of (row, col) along each direction.
func (that *Game) isWinningDrop(row, col int) bool {
	mark := that.Cell(row, col)
	if mark == Empty {
		return false
	}

	for _, d := range directions {
		count := 1 + that.run(row, col, d[0], d[1], mark) + that.run(row, col, -d[0], -d[1], mark)
		if count >= that.K {
			return true
		}
	}

	return false
}

func (that *Game) run(row, col, dr, dc int, mark Cell) int {
	count := 0
	for r, c := row+dr, col+dc; that.inBounds(r, c) && that.Cell(r, c) == mark; r, c = r+dr, c+dc {
		count++
	}

	return count
}

func (that *Game) inBounds(row, col int) bool {
	return row >= 0 && row < that.Height && col >= 0 && col < that.Width
}

func (that *Game) isBoardFull() bool {
	// the top row fills last under gravity
	top := (that.Height - 1) * that.Width
	for _, cell := range that.cells[top:] {
		if cell == Empty {
			return false
		}
	}

	return true
}
