package desktop

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/frontend/scene"
	"github.com/rocketscienceinc/tictactoe-board/internal/layout"
)

const (
	sidePanelWidth = 160
	debugGlyphSize = 16
)

var ErrNoMatch = errors.New("no match attached")

var (
	backgroundColor = color.RGBA{R: 0x1e, G: 0x1e, B: 0x2e, A: 0xff}
	lineColor       = color.RGBA{R: 0xcd, G: 0xd6, B: 0xf4, A: 0xff}
	circleColor     = color.RGBA{R: 0x89, G: 0xb4, B: 0xfa, A: 0xff}
	crossColor      = color.RGBA{R: 0xf3, G: 0x8b, B: 0xa8, A: 0xff}
	overlayColor    = color.RGBA{A: 0xc0}
	buttonColor     = color.RGBA{R: 0x45, G: 0x47, B: 0x5a, A: 0xff}
)

type match interface {
	Start()
	Restart()
	IsOver() bool
	Click(x, y float64)
}

// Window is an ebiten.Game that draws the board and forwards clicks to a
// match. It implements usecase.Presenter through the embedded scene.
type Window struct {
	*scene.Scene

	logger *slog.Logger
	match  match

	// set by Run; Update ends the game loop once it is done
	ctx context.Context

	title     string
	boardSize int
	grid      layout.Grid

	restartButton image.Rectangle
}

func New(logger *slog.Logger, title string, boardSize int) *Window {
	window := &Window{
		logger: logger.With("component", "desktop"),

		title:     title,
		boardSize: boardSize,
		grid:      layout.New(0, 0, float64(boardSize), float64(boardSize)),
	}
	window.Scene = scene.New(nil)

	buttonWidth, buttonHeight := boardSize/3, boardSize/10
	window.restartButton = image.Rect(
		(boardSize-buttonWidth)/2, boardSize/2+buttonHeight/2,
		(boardSize+buttonWidth)/2, boardSize/2+buttonHeight/2+buttonHeight,
	)

	return window
}

// Grid is the board area in window pixels.
func (that *Window) Grid() layout.Grid {
	return that.grid
}

func (that *Window) Attach(m match) {
	that.match = m
}

// Run opens the window and blocks until it is closed or ctx is canceled.
func (that *Window) Run(ctx context.Context) error {
	if that.match == nil {
		return ErrNoMatch
	}

	that.ctx = ctx

	width, height := that.Layout(0, 0)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(that.title)

	that.match.Start()

	if err := ebiten.RunGame(that); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("failed to run window: %w", err)
	}

	that.logger.Info("window closed")

	return nil
}

// Update handles input once per tick.
func (that *Window) Update() error {
	if that.ctx != nil && that.ctx.Err() != nil {
		that.logger.Info("context canceled, closing window")
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		that.HandleClick(ebiten.CursorPosition())
	}

	if that.match.IsOver() && (inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)) {
		that.match.Restart()
	}

	return nil
}

// HandleClick routes a left click either to the restart button of the game
// over overlay or to the board.
func (that *Window) HandleClick(x, y int) {
	if that.match.IsOver() {
		if image.Pt(x, y).In(that.restartButton) {
			that.match.Restart()
		}
		return
	}

	that.match.Click(float64(x), float64(y))
}

func (that *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	that.drawBoard(screen)

	that.EachMarker(func(player entity.Cell, row, col int) {
		x, y := that.grid.CellCenter(row, col)
		that.drawMarker(screen, player, float32(x), float32(y), that.markerRadius())
	})

	that.drawNextPlayer(screen)

	if that.IsGameOver() {
		that.drawGameOver(screen)
	}
}

func (that *Window) Layout(_, _ int) (int, int) {
	return that.boardSize + sidePanelWidth, that.boardSize
}

func (that *Window) markerRadius() float32 {
	return float32(that.grid.CellWidth()) * 0.3
}

func (that *Window) strokeWidth() float32 {
	return float32(math.Max(2, float64(that.boardSize)/80))
}

func (that *Window) drawBoard(screen *ebiten.Image) {
	size := float32(that.boardSize)
	stroke := that.strokeWidth()

	for k := 1; k < entity.BoardSize; k++ {
		x, y := that.grid.CellOrigin(k, k)
		vector.StrokeLine(screen, float32(x), 0, float32(x), size, stroke, lineColor, true)
		vector.StrokeLine(screen, 0, float32(y), size, float32(y), stroke, lineColor, true)
	}
}

func (that *Window) drawMarker(screen *ebiten.Image, player entity.Cell, cx, cy, radius float32) {
	stroke := that.strokeWidth() * 1.5

	switch player {
	case entity.PlayerOne:
		vector.StrokeCircle(screen, cx, cy, radius, stroke, circleColor, true)
	case entity.PlayerTwo:
		vector.StrokeLine(screen, cx-radius, cy-radius, cx+radius, cy+radius, stroke, crossColor, true)
		vector.StrokeLine(screen, cx-radius, cy+radius, cx+radius, cy-radius, stroke, crossColor, true)
	}
}

// drawNextPlayer shows a small marker for the player to move in the side
// panel.
func (that *Window) drawNextPlayer(screen *ebiten.Image) {
	if that.Next == entity.EmptyCell {
		return
	}

	left := that.boardSize + debugGlyphSize
	ebitenutil.DebugPrintAt(screen, "Next:", left, debugGlyphSize)

	cx := float32(that.boardSize + sidePanelWidth/2)
	cy := float32(4 * debugGlyphSize)
	that.drawMarker(screen, that.Next, cx, cy, sidePanelWidth/6)
}

func (that *Window) drawGameOver(screen *ebiten.Image) {
	size := float32(that.boardSize)
	vector.DrawFilledRect(screen, 0, 0, size, size, overlayColor, false)

	messageX := that.boardSize/2 - len(that.GameOver)*debugGlyphSize/4
	ebitenutil.DebugPrintAt(screen, that.GameOver, messageX, that.boardSize/2-debugGlyphSize*2)

	b := that.restartButton
	vector.DrawFilledRect(screen,
		float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()),
		buttonColor, false,
	)

	const label = "Restart"
	labelX := b.Min.X + b.Dx()/2 - len(label)*debugGlyphSize/4
	labelY := b.Min.Y + b.Dy()/2 - debugGlyphSize/2
	ebitenutil.DebugPrintAt(screen, label, labelX, labelY)
}
