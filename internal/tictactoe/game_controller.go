package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

// winningSum is the absolute line sum that means one player owns the line.
const winningSum = entity.BoardSize

var rejected = entity.Outcome{Result: entity.ResultRejected}

// GameController owns the state of a single game. It is not safe for
// concurrent use; callers drive it from one input loop.
type GameController struct {
	game *entity.Game
}

func NewGameController() *GameController {
	return &GameController{
		game: entity.NewGame(),
	}
}

// NewGame discards every placement and hands the first turn to PlayerOne.
func (that *GameController) NewGame() {
	that.game = entity.NewGame()
}

// Game returns a copy of the current state.
func (that *GameController) Game() entity.Game {
	return *that.game
}

// PlaceMark puts the current player's mark at row, col. A rejected move
// leaves the state untouched and returns an error wrapping
// apperror.ErrInvalidMove together with its cause.
func (that *GameController) PlaceMark(row, col int) (entity.Outcome, error) {
	if err := validateMove(that.game, row, col); err != nil {
		return rejected, fmt.Errorf("%w: %w", apperror.ErrInvalidMove, err)
	}

	that.game.Board[row][col] = that.game.Turn
	updateGameStatus(that.game)

	return that.game.Outcome(), nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, row, col int) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !entity.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrInvalidCell, row, col)
	}

	if game.Board[row][col] != entity.EmptyCell {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, row, col)
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game) {
	switch winner, full := checkGameStatus(&game.Board); {
	case winner != entity.EmptyCell:
		game.Winner = winner
		game.Status = entity.StatusWon
	case full:
		game.Status = entity.StatusTied
	default:
		game.Turn = game.Turn.Opponent()
	}
}

// checkGameStatus scans row i and column i for i = 0..2, then the left
// diagonal, then the right diagonal, and returns the owner of the first
// complete line. full is only meaningful when there is no winner.
func checkGameStatus(board *entity.Board) (winner entity.Cell, full bool) {
	for i := 0; i < entity.BoardSize; i++ {
		var rowSum, colSum int
		for j := 0; j < entity.BoardSize; j++ {
			rowSum += int(board[i][j])
			colSum += int(board[j][i])
		}

		if w := lineOwner(rowSum); w != entity.EmptyCell {
			return w, false
		}

		if w := lineOwner(colSum); w != entity.EmptyCell {
			return w, false
		}
	}

	var leftDiagonalSum, rightDiagonalSum int
	for i := 0; i < entity.BoardSize; i++ {
		leftDiagonalSum += int(board[i][i])
		rightDiagonalSum += int(board[entity.BoardSize-1-i][i])
	}

	if w := lineOwner(leftDiagonalSum); w != entity.EmptyCell {
		return w, false
	}

	if w := lineOwner(rightDiagonalSum); w != entity.EmptyCell {
		return w, false
	}

	return entity.EmptyCell, board.IsFull()
}

func lineOwner(sum int) entity.Cell {
	switch sum {
	case winningSum:
		return entity.PlayerOne
	case -winningSum:
		return entity.PlayerTwo
	default:
		return entity.EmptyCell
	}
}
