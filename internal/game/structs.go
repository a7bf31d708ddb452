package game

// Player identifies one side of the game.
type Player uint8

const (
	PlayerOne Player = iota + 1
	PlayerTwo
)

// Cell is the state of one board position.
type Cell uint8

const (
	Empty Cell = iota
	OccupiedByPlayerOne
	OccupiedByPlayerTwo
)

// Status is the lifecycle of a game. Every status other than InProgress is terminal.
type Status uint8

const (
	InProgress Status = iota
	PlayerOneWin
	PlayerTwoWin
	Tie
)

// Game holds the board and turn state of one connect-k game.
//
// Cells are stored row-major with row 0 as the bottom row,
// so the cell at (row, col) lives at index row*Width + col.
type Game struct {
	Width  int
	Height int
	K      int

	CurrentPlayer Player
	Status        Status

	cells []Cell
}

func (that Player) IsValid() bool {
	return that == PlayerOne || that == PlayerTwo
}

// Opponent returns the other player.
func (that Player) Opponent() Player {
	if that == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// Mark returns the cell state this player leaves on the board.
func (that Player) Mark() Cell {
	if that == PlayerOne {
		return OccupiedByPlayerOne
	}
	return OccupiedByPlayerTwo
}

func (that Player) String() string {
	switch that {
	case PlayerOne:
		return "PlayerOne"
	case PlayerTwo:
		return "PlayerTwo"
	default:
		return "UnknownPlayer"
	}
}

func (that Status) IsTerminal() bool {
	return that != InProgress
}

func (that Status) String() string {
	switch that {
	case InProgress:
		return "InProgress"
	case PlayerOneWin:
		return "PlayerOneWin"
	case PlayerTwoWin:
		return "PlayerTwoWin"
	case Tie:
		return "Tie"
	default:
		return "UnknownStatus"
	}
}

func winFor(player Player) Status {
	if player == PlayerOne {
		return PlayerOneWin
	}
	return PlayerTwoWin
}
