// Package scene keeps what a front end has on screen: placed markers, the
// next player indicator and the game over message.
package scene

import "github.com/rocketscienceinc/tictactoe-board/internal/entity"

// Scene implements usecase.Presenter by recording presentation state and
// calling onChange after every update. Front ends embed it and read the
// state when they draw.
type Scene struct {
	Markers  [entity.BoardSize][entity.BoardSize]entity.Cell
	Next     entity.Cell
	GameOver string

	onChange func()
}

// New returns an empty scene. onChange may be nil for front ends that
// redraw on their own schedule.
func New(onChange func()) *Scene {
	return &Scene{onChange: onChange}
}

func (that *Scene) Reset() {
	that.Markers = [entity.BoardSize][entity.BoardSize]entity.Cell{}
	that.GameOver = ""
	that.changed()
}

func (that *Scene) ShowMarker(player entity.Cell, row, col int) {
	that.Markers[row][col] = player
	that.changed()
}

func (that *Scene) ShowNextPlayer(player entity.Cell) {
	that.Next = player
	that.changed()
}

func (that *Scene) ShowGameOver(message string) {
	that.GameOver = message
	that.changed()
}

func (that *Scene) IsGameOver() bool {
	return that.GameOver != ""
}

// EachMarker calls fn for every placed marker, row by row.
func (that *Scene) EachMarker(fn func(player entity.Cell, row, col int)) {
	for row := range that.Markers {
		for col, player := range that.Markers[row] {
			if player != entity.EmptyCell {
				fn(player, row, col)
			}
		}
	}
}

func (that *Scene) changed() {
	if that.onChange != nil {
		that.onChange()
	}
}
