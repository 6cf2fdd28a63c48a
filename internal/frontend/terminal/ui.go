package terminal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/frontend/scene"
	"github.com/rocketscienceinc/tictactoe-board/internal/layout"
)

const (
	boardOriginX = 2
	boardOriginY = 1

	restartLabel = "[ Restart ]"
	helpText     = "click or press 1-9 to play, q to quit"
)

var ErrNoMatch = errors.New("no match attached")

var (
	lineStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	circleStyle  = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true)
	crossStyle   = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Bold(true)
	bannerStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	buttonStyle  = tcell.StyleDefault.Reverse(true)
	captionStyle = tcell.StyleDefault.Dim(true)
)

type match interface {
	Start()
	Restart()
	IsOver() bool
	Click(x, y float64)
	Place(row, col int) entity.Outcome
}

type rect struct {
	x, y, width int
}

func (that rect) contains(x, y int) bool {
	return y == that.y && x >= that.x && x < that.x+that.width
}

// UI draws the board into a terminal and turns mouse and key events into
// match calls. It implements usecase.Presenter through the embedded scene.
type UI struct {
	*scene.Scene

	logger *slog.Logger
	screen tcell.Screen
	match  match

	cellWidth, cellHeight int
	grid                  layout.Grid

	restart rect

	lastButtons tcell.ButtonMask
}

// New opens the controlling terminal and enables mouse reporting.
func New(logger *slog.Logger, cellWidth, cellHeight int) (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}

	screen.EnableMouse()

	return NewWithScreen(logger, screen, cellWidth, cellHeight), nil
}

// NewWithScreen uses an already initialized screen.
func NewWithScreen(logger *slog.Logger, screen tcell.Screen, cellWidth, cellHeight int) *UI {
	ui := &UI{
		logger: logger.With("component", "terminal"),
		screen: screen,

		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		grid: layout.New(
			boardOriginX, boardOriginY,
			float64(entity.BoardSize*cellWidth), float64(entity.BoardSize*cellHeight),
		),
	}
	ui.Scene = scene.New(ui.draw)

	return ui
}

// Grid is the board area in character cells.
func (that *UI) Grid() layout.Grid {
	return that.grid
}

func (that *UI) Attach(m match) {
	that.match = m
}

// Run starts the attached match and processes events until the player
// quits or ctx is canceled.
func (that *UI) Run(ctx context.Context) error {
	if that.match == nil {
		return ErrNoMatch
	}

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go that.screen.ChannelEvents(events, quit)
	defer close(quit)

	that.match.Start()

	for {
		select {
		case <-ctx.Done():
			that.logger.Info("context canceled, leaving terminal")
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}

			if !that.HandleEvent(ev) {
				that.logger.Info("player quit")
				return nil
			}
		}
	}
}

// Close restores the terminal.
func (that *UI) Close() {
	that.screen.Fini()
}

// HandleEvent reacts to one terminal event. It returns false when the
// player asked to quit.
func (that *UI) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		that.screen.Sync()
		that.draw()
	case *tcell.EventKey:
		return that.handleKey(ev)
	case *tcell.EventMouse:
		that.handleMouse(ev)
	}

	return true
}

func (that *UI) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		if that.match.IsOver() {
			that.match.Restart()
		}
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch r := ev.Rune(); {
	case r == 'q' || r == 'Q':
		return false
	case r == 'r' || r == 'R':
		if that.match.IsOver() {
			that.match.Restart()
		}
	case r >= '1' && r <= '9':
		// keypad layout: 1 is the top left cell
		index := int(r - '1')
		that.match.Place(index/entity.BoardSize, index%entity.BoardSize)
	}

	return true
}

func (that *UI) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && that.lastButtons&tcell.Button1 == 0
	that.lastButtons = buttons

	if !pressed {
		return
	}

	x, y := ev.Position()

	if that.match.IsOver() {
		if that.restart.contains(x, y) {
			that.match.Restart()
		}
		return
	}

	if that.onSeparator(x, y) {
		return
	}

	that.match.Click(float64(x), float64(y))
}

// onSeparator reports whether a board position holds a grid line. Lines
// are drawn on the last column and row of the cells before them.
func (that *UI) onSeparator(x, y int) bool {
	dx, dy := x-boardOriginX, y-boardOriginY
	width := entity.BoardSize * that.cellWidth
	height := entity.BoardSize * that.cellHeight

	if dx >= 0 && dx < width-1 && (dx+1)%that.cellWidth == 0 {
		return true
	}

	return dy >= 0 && dy < height-1 && (dy+1)%that.cellHeight == 0
}

func (that *UI) draw() {
	that.screen.Clear()

	that.drawBoard()
	that.drawMarkers()

	sideX := boardOriginX + entity.BoardSize*that.cellWidth + 3
	that.drawText(sideX, boardOriginY, captionStyle, "Next:")
	if that.Next != entity.EmptyCell {
		that.drawText(sideX+6, boardOriginY, markerStyle(that.Next), that.Next.String())
	}

	footerY := boardOriginY + entity.BoardSize*that.cellHeight + 1
	that.restart = rect{}
	if that.IsGameOver() {
		that.drawText(boardOriginX, footerY, bannerStyle, that.GameOver)

		that.restart = rect{x: boardOriginX, y: footerY + 1, width: len(restartLabel)}
		that.drawText(that.restart.x, that.restart.y, buttonStyle, restartLabel)
		that.drawText(that.restart.x+that.restart.width+1, that.restart.y, captionStyle, "or press r")
	} else {
		that.drawText(boardOriginX, footerY, captionStyle, helpText)
	}

	that.screen.Show()
}

func (that *UI) drawBoard() {
	width := entity.BoardSize * that.cellWidth
	height := entity.BoardSize * that.cellHeight

	for k := 1; k < entity.BoardSize; k++ {
		lineX := boardOriginX + k*that.cellWidth - 1
		for y := 0; y < height; y++ {
			that.screen.SetContent(lineX, boardOriginY+y, tcell.RuneVLine, nil, lineStyle)
		}
	}

	// horizontal lines go second so crossings end up as plus signs
	for k := 1; k < entity.BoardSize; k++ {
		lineY := boardOriginY + k*that.cellHeight - 1
		for x := 0; x < width; x++ {
			r := tcell.RuneHLine
			if (x+1)%that.cellWidth == 0 && x+1 < width {
				r = tcell.RunePlus
			}
			that.screen.SetContent(boardOriginX+x, lineY, r, nil, lineStyle)
		}
	}
}

func (that *UI) drawMarkers() {
	that.EachMarker(func(player entity.Cell, row, col int) {
		x, y := that.markerPosition(row, col)
		that.screen.SetContent(x, y, []rune(player.String())[0], nil, markerStyle(player))
	})
}

// markerPosition is the character cell a marker is drawn at. Separator
// lines take the last column and row of each cell, so the center is
// computed over the remaining area.
func (that *UI) markerPosition(row, col int) (x, y int) {
	ox, oy := that.grid.CellOrigin(row, col)

	return int(ox) + (that.cellWidth-1)/2, int(oy) + (that.cellHeight-1)/2
}

func (that *UI) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		that.screen.SetContent(x+i, y, r, nil, style)
	}
}

func markerStyle(player entity.Cell) tcell.Style {
	if player == entity.PlayerOne {
		return circleStyle
	}

	return crossStyle
}
