package apperror

import "errors"

// ErrInvalidMove is the only error class the game core produces.
var ErrInvalidMove = errors.New("invalid move")

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
)
