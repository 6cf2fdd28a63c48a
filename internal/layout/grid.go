package layout

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

// Grid describes where the board sits on a drawing surface. Units are
// whatever the front end measures in: pixels for a window, character
// cells for a terminal.
type Grid struct {
	OriginX, OriginY float64
	Width, Height    float64
}

func New(originX, originY, width, height float64) Grid {
	return Grid{
		OriginX: originX,
		OriginY: originY,
		Width:   width,
		Height:  height,
	}
}

func (that Grid) CellWidth() float64 {
	return that.Width / entity.BoardSize
}

func (that Grid) CellHeight() float64 {
	return that.Height / entity.BoardSize
}

// Contains reports whether the point lies on the board.
func (that Grid) Contains(x, y float64) bool {
	x, y = x-that.OriginX, y-that.OriginY

	return x >= 0 && y >= 0 && x < that.Width && y < that.Height
}

// CellAt maps a surface point to a board cell. Rows grow downwards,
// columns grow to the right.
func (that Grid) CellAt(x, y float64) (row, col int, ok bool) {
	if !that.Contains(x, y) {
		return 0, 0, false
	}

	col = int(math.Floor((x - that.OriginX) / that.CellWidth()))
	row = int(math.Floor((y - that.OriginY) / that.CellHeight()))

	// guards against float rounding on the far edge
	row = min(row, entity.BoardSize-1)
	col = min(col, entity.BoardSize-1)

	return row, col, true
}

// CellOrigin returns the top left corner of a cell.
func (that Grid) CellOrigin(row, col int) (x, y float64) {
	return that.OriginX + float64(col)*that.CellWidth(),
		that.OriginY + float64(row)*that.CellHeight()
}

// CellCenter returns the middle of a cell, where markers are placed.
func (that Grid) CellCenter(row, col int) (x, y float64) {
	x, y = that.CellOrigin(row, col)

	return x + that.CellWidth()/2, y + that.CellHeight()/2
}
