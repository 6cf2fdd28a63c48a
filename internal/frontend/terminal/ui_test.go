package terminal

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-board/internal/usecase"
)

const (
	testCellWidth  = 7
	testCellHeight = 3
)

func newTestUI(t *testing.T) (*UI, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(60, 20)
	t.Cleanup(screen.Fini)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ui := NewWithScreen(logger, screen, testCellWidth, testCellHeight)
	match := usecase.NewMatch(logger, tictactoe.NewGameController(), ui, ui.Grid())
	ui.Attach(match)
	match.Start()

	return ui, screen
}

func runeAt(screen tcell.SimulationScreen, x, y int) rune {
	cells, width, _ := screen.GetContents()
	cell := cells[y*width+x]
	if len(cell.Runes) == 0 {
		return ' '
	}

	return cell.Runes[0]
}

func lineAt(screen tcell.SimulationScreen, y int) string {
	cells, width, _ := screen.GetContents()

	var sb strings.Builder
	for x := 0; x < width; x++ {
		cell := cells[y*width+x]
		if len(cell.Runes) == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(cell.Runes[0])
	}

	return sb.String()
}

// clickCell presses and releases the left button inside a board cell.
func clickCell(ui *UI, row, col int) {
	x := boardOriginX + col*testCellWidth + 1
	y := boardOriginY + row*testCellHeight
	click(ui, x, y)
}

func click(ui *UI, x, y int) {
	ui.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	ui.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func press(ui *UI, r rune) bool {
	return ui.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func TestUI_Click(t *testing.T) {
	t.Run("Click draws a circle and shows the cross as next", func(t *testing.T) {
		// Given: a fresh terminal match
		ui, screen := newTestUI(t)

		// When: the top left cell is clicked
		clickCell(ui, 0, 0)

		// Then: a circle is drawn in the middle of the cell
		assert.Equal(t, 'O', runeAt(screen, 5, 2))

		// Then: the next player indicator shows a cross
		assert.Contains(t, lineAt(screen, boardOriginY), "Next: X")
	})

	t.Run("Second click in another cell draws a cross", func(t *testing.T) {
		ui, screen := newTestUI(t)

		clickCell(ui, 0, 0)
		clickCell(ui, 1, 2)

		assert.Equal(t, 'X', runeAt(screen, 19, 5))
		assert.Contains(t, lineAt(screen, boardOriginY), "Next: O")
	})

	t.Run("Held button does not place twice", func(t *testing.T) {
		// Given: a fresh terminal match
		ui, screen := newTestUI(t)

		// When: the button is pressed and dragged to another cell
		ui.HandleEvent(tcell.NewEventMouse(3, 1, tcell.Button1, tcell.ModNone))
		ui.HandleEvent(tcell.NewEventMouse(10, 1, tcell.Button1, tcell.ModNone))

		// Then: only the first cell is taken
		assert.Equal(t, 'O', runeAt(screen, 5, 2))
		assert.Equal(t, ' ', runeAt(screen, 12, 2))
	})

	t.Run("Click on a grid line does nothing", func(t *testing.T) {
		// Given: a fresh terminal match
		ui, screen := newTestUI(t)

		// When: the vertical line right of the first column and the
		// horizontal line below the first row are clicked
		click(ui, boardOriginX+testCellWidth-1, boardOriginY)
		click(ui, boardOriginX+1, boardOriginY+testCellHeight-1)

		// Then: no cell is taken and player one is still next
		assert.Equal(t, ' ', runeAt(screen, 5, 2))
		assert.Equal(t, ' ', runeAt(screen, 12, 2))
		assert.Equal(t, ' ', runeAt(screen, 5, 5))
		assert.Contains(t, lineAt(screen, boardOriginY), "Next: O")

		// When: the same cell is clicked next to the line
		click(ui, boardOriginX+testCellWidth-2, boardOriginY)

		// Then: the first cell is taken
		assert.Equal(t, 'O', runeAt(screen, 5, 2))
	})

	t.Run("Click outside the board does nothing", func(t *testing.T) {
		ui, screen := newTestUI(t)

		click(ui, 40, 15)

		assert.Contains(t, lineAt(screen, boardOriginY), "Next: O")
	})
}

func TestUI_Keys(t *testing.T) {
	t.Run("Digits place marks and a full row ends the game", func(t *testing.T) {
		// Given: a fresh terminal match
		ui, screen := newTestUI(t)

		// When: player one takes 1, 2, 3 while player two takes 4, 5
		for _, r := range "14253" {
			require.True(t, press(ui, r))
		}

		// Then: the victory banner and restart button are shown
		footerY := boardOriginY + 3*testCellHeight + 1
		assert.Contains(t, lineAt(screen, footerY), "Player 1 Victory!")
		assert.Contains(t, lineAt(screen, footerY+1), restartLabel)

		// When: the restart button is clicked
		click(ui, boardOriginX+1, footerY+1)

		// Then: the board is empty and player one is next
		assert.Equal(t, ' ', runeAt(screen, 5, 2))
		assert.NotContains(t, lineAt(screen, footerY), "Victory")
		assert.Contains(t, lineAt(screen, boardOriginY), "Next: O")
	})

	t.Run("r restarts only after the game is over", func(t *testing.T) {
		ui, screen := newTestUI(t)

		press(ui, '5')
		press(ui, 'r')

		// still in the same game
		assert.Equal(t, 'O', runeAt(screen, 12, 5))

		for _, r := range "1327" {
			press(ui, r)
		}
		footerY := boardOriginY + 3*testCellHeight + 1
		require.Contains(t, lineAt(screen, footerY), "Victory!")

		press(ui, 'r')
		assert.Equal(t, ' ', runeAt(screen, 12, 5))
	})

	t.Run("Quit keys", func(t *testing.T) {
		ui, _ := newTestUI(t)

		assert.False(t, press(ui, 'q'))
		assert.False(t, ui.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
		assert.False(t, ui.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
		assert.True(t, press(ui, 'x'))
	})
}
