package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/layout"
)

const tieMessage = "Tie!"

// Presenter is the front end side of a match. It owns every marker and
// overlay it draws; the match only tells it what happened.
type Presenter interface {
	Reset()
	ShowMarker(player entity.Cell, row, col int)
	ShowNextPlayer(player entity.Cell)
	ShowGameOver(message string)
}

type gameController interface {
	NewGame()
	PlaceMark(row, col int) (entity.Outcome, error)
	Game() entity.Game
}

// Match wires one game to one presenter.
type Match struct {
	logger *slog.Logger

	controller gameController
	presenter  Presenter
	grid       layout.Grid
}

func NewMatch(logger *slog.Logger, controller gameController, presenter Presenter, grid layout.Grid) *Match {
	return &Match{
		logger: logger.With("component", "match"),

		controller: controller,
		presenter:  presenter,
		grid:       grid,
	}
}

// Start begins a fresh game and clears whatever the presenter shows.
func (that *Match) Start() {
	that.controller.NewGame()
	that.presenter.Reset()
	that.presenter.ShowNextPlayer(that.controller.Game().Turn)

	that.logger.Debug("new game started")
}

// Restart is bound to the restart action of the game over overlay.
func (that *Match) Restart() {
	that.Start()
}

func (that *Match) IsOver() bool {
	game := that.controller.Game()

	return game.IsFinished()
}

// Click handles a primary button press at a surface point. Presses outside
// the board or after the game has ended are ignored.
func (that *Match) Click(x, y float64) {
	if that.IsOver() {
		return
	}

	row, col, ok := that.grid.CellAt(x, y)
	if !ok {
		return
	}

	that.logger.Debug("click mapped to cell", "x", x, "y", y, "row", row, "col", col)

	that.Place(row, col)
}

// Place tries to put the current player's mark on a cell. Invalid moves are
// dropped and the match waits for the next input.
func (that *Match) Place(row, col int) entity.Outcome {
	log := that.logger.With("method", "Place", "row", row, "col", col)

	player := that.controller.Game().Turn

	outcome, err := that.controller.PlaceMark(row, col)
	if err != nil {
		if !errors.Is(err, apperror.ErrInvalidMove) {
			log.Error("unexpected placement error", "error", err)
		} else {
			log.Debug("move rejected", "error", err)
		}

		return outcome
	}

	game := that.controller.Game()
	log.Debug("mark placed", "player", player.Number(), "board", game.Board.String())

	that.presenter.ShowMarker(player, row, col)

	switch outcome.Result {
	case entity.ResultWon:
		that.endGame(victoryMessage(outcome.Winner))
	case entity.ResultTied:
		that.endGame(tieMessage)
	default:
		that.presenter.ShowNextPlayer(game.Turn)
	}

	return outcome
}

func (that *Match) endGame(message string) {
	that.logger.Info("game over", "result", message)
	that.presenter.ShowGameOver(message)
}

func victoryMessage(winner entity.Cell) string {
	return fmt.Sprintf("Player %d Victory!", winner.Number())
}
