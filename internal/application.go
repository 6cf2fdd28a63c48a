package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-board/internal/config"
	"github.com/rocketscienceinc/tictactoe-board/internal/frontend/desktop"
	"github.com/rocketscienceinc/tictactoe-board/internal/frontend/terminal"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-board/internal/usecase"
)

// RunApp - runs the application: one game, one front end, wired together
// through a match.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gameController := tictactoe.NewGameController()

	switch conf.Frontend {
	case config.FrontendDesktop:
		window := desktop.New(logger, conf.Desktop.Title, conf.Desktop.BoardSize)
		window.Attach(usecase.NewMatch(logger, gameController, window, window.Grid()))

		log.Info("Starting desktop frontend", "board-size", conf.Desktop.BoardSize)
		if err := window.Run(ctx); err != nil {
			return fmt.Errorf("desktop frontend error: %w", err)
		}
	default:
		ui, err := terminal.New(logger, conf.Terminal.CellWidth, conf.Terminal.CellHeight)
		if err != nil {
			return fmt.Errorf("could not open terminal: %w", err)
		}
		defer ui.Close()

		ui.Attach(usecase.NewMatch(logger, gameController, ui, ui.Grid()))

		log.Info("Starting terminal frontend")
		if err = ui.Run(ctx); err != nil {
			return fmt.Errorf("terminal frontend error: %w", err)
		}
	}

	log.Info("Application finished")

	return nil
}
