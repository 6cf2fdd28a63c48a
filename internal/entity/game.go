package entity

import (
	"strconv"
	"strings"
)

// BoardSize is the number of rows and columns on the board.
const BoardSize = 3

// Cell is a board position value. Player values are chosen so that a line
// owned by one player sums to ±BoardSize.
type Cell int

const (
	EmptyCell Cell = 0
	PlayerOne Cell = 1
	PlayerTwo Cell = -1
)

type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusTied
)

type Result int

const (
	ResultRejected Result = iota
	ResultInProgress
	ResultWon
	ResultTied
)

// Outcome is what a placement attempt produced.
type Outcome struct {
	Result Result
	Winner Cell
}

type Board [BoardSize][BoardSize]Cell

type Game struct {
	Board  Board
	Turn   Cell
	Status Status
	Winner Cell
}

func NewGame() *Game {
	return &Game{
		Board:  Board{},
		Turn:   PlayerOne,
		Status: StatusInProgress,
		Winner: EmptyCell,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status != StatusInProgress
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusInProgress
}

// Outcome reports the current status in the form PlaceMark returns it.
func (that *Game) Outcome() Outcome {
	switch that.Status {
	case StatusWon:
		return Outcome{Result: ResultWon, Winner: that.Winner}
	case StatusTied:
		return Outcome{Result: ResultTied}
	default:
		return Outcome{Result: ResultInProgress}
	}
}

func (that Cell) Opponent() Cell {
	switch that {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	default:
		return EmptyCell
	}
}

// String renders PlayerOne as a circle and PlayerTwo as a cross.
func (that Cell) String() string {
	switch that {
	case PlayerOne:
		return "O"
	case PlayerTwo:
		return "X"
	default:
		return " "
	}
}

// Number is the 1-based player number shown to people.
func (that Cell) Number() int {
	switch that {
	case PlayerOne:
		return 1
	case PlayerTwo:
		return 2
	default:
		return 0
	}
}

func (that Status) String() string {
	switch that {
	case StatusInProgress:
		return "in progress"
	case StatusWon:
		return "won"
	case StatusTied:
		return "tied"
	default:
		return "unknown"
	}
}

func (that Result) String() string {
	switch that {
	case ResultRejected:
		return "rejected"
	case ResultInProgress:
		return "in progress"
	case ResultWon:
		return "won"
	case ResultTied:
		return "tied"
	default:
		return "unknown"
	}
}

// InBounds reports whether row and col address a cell of the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

func (that Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// Counts returns how many marks each player has on the board.
func (that Board) Counts() (playerOne, playerTwo int) {
	for _, row := range that {
		for _, cell := range row {
			switch cell {
			case PlayerOne:
				playerOne++
			case PlayerTwo:
				playerTwo++
			}
		}
	}

	return playerOne, playerTwo
}

// String joins the raw cell values row by row, e.g. "1,0,-1,0,0,0,0,0,0".
func (that Board) String() string {
	values := make([]string, 0, BoardSize*BoardSize)
	for _, row := range that {
		for _, cell := range row {
			values = append(values, strconv.Itoa(int(cell)))
		}
	}

	return strings.Join(values, ",")
}
