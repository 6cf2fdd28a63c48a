package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Reads the YAML file", func(t *testing.T) {
		// Given: a config file with a desktop frontend
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nfrontend: desktop\ndesktop:\n  board-size: 600\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: the config is loaded
		conf := MustLoad(path)

		// Then: file values win and the rest falls back to defaults
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, FrontendDesktop, conf.Frontend)
		assert.Equal(t, 600, conf.Desktop.BoardSize)
		assert.Equal(t, "Tic-Tac-Toe", conf.Desktop.Title)
		assert.Equal(t, 7, conf.Terminal.CellWidth)
		assert.Equal(t, 3, conf.Terminal.CellHeight)
		require.NoError(t, conf.Validate())
	})

	t.Run("Falls back to environment when the file is missing", func(t *testing.T) {
		// Given: no config file and a frontend set through the environment
		t.Setenv("FRONTEND", FrontendTerminal)
		t.Setenv("TERMINAL_CELL_WIDTH", "9")

		// When: the config is loaded
		conf := MustLoad(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: environment and defaults are used
		assert.Equal(t, FrontendTerminal, conf.Frontend)
		assert.Equal(t, 9, conf.Terminal.CellWidth)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "json", conf.LogFormat)
	})

	t.Run("Panics on a malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("desktop: [unclosed"), 0o600))

		assert.Panics(t, func() { MustLoad(path) })
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Frontend: FrontendTerminal,
		Terminal: Terminal{CellWidth: 7, CellHeight: 3},
		Desktop:  Desktop{BoardSize: 480},
	}

	t.Run("Valid", func(t *testing.T) {
		conf := valid
		assert.NoError(t, conf.Validate())
	})

	t.Run("Unknown frontend", func(t *testing.T) {
		conf := valid
		conf.Frontend = "web"

		assert.ErrorIs(t, conf.Validate(), ErrUnknownFrontend)
	})

	t.Run("Bad terminal cell size", func(t *testing.T) {
		conf := valid
		conf.Terminal.CellHeight = 0

		assert.Error(t, conf.Validate())
	})

	t.Run("Bad desktop board size", func(t *testing.T) {
		conf := valid
		conf.Desktop.BoardSize = 2

		assert.Error(t, conf.Validate())
	})
}
