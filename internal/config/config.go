package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	FrontendTerminal = "terminal"
	FrontendDesktop  = "desktop"
)

var ErrUnknownFrontend = errors.New("unknown frontend")

type Config struct {
	LogLevel  string   `yaml:"log-level"  env:"LOG_LEVEL"  env-default:"info"`
	LogFormat string   `yaml:"log-format" env:"LOG_FORMAT" env-default:"json"`
	LogFile   string   `yaml:"log-file"   env:"LOG_FILE"`
	Frontend  string   `yaml:"frontend"   env:"FRONTEND"   env-default:"terminal"`
	Terminal  Terminal `yaml:"terminal"`
	Desktop   Desktop  `yaml:"desktop"`
}

type Terminal struct {
	CellWidth  int `yaml:"cell-width"  env:"TERMINAL_CELL_WIDTH"  env-default:"7"`
	CellHeight int `yaml:"cell-height" env:"TERMINAL_CELL_HEIGHT" env-default:"3"`
}

type Desktop struct {
	BoardSize int    `yaml:"board-size" env:"DESKTOP_BOARD_SIZE" env-default:"480"`
	Title     string `yaml:"title"      env:"DESKTOP_TITLE"      env-default:"Tic-Tac-Toe"`
}

// MustLoad - load all configurations in config.yml file. A missing file
// falls back to environment variables and defaults.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); err != nil {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to load config from environment: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Validate - checks values cleanenv cannot check through tags.
func (that *Config) Validate() error {
	switch that.Frontend {
	case FrontendTerminal, FrontendDesktop:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFrontend, that.Frontend)
	}

	if that.Terminal.CellWidth < 3 || that.Terminal.CellHeight < 2 {
		return fmt.Errorf("terminal cells must be at least 3x2, got %dx%d", that.Terminal.CellWidth, that.Terminal.CellHeight)
	}

	if that.Desktop.BoardSize < 3 {
		return fmt.Errorf("desktop board size must be at least 3, got %d", that.Desktop.BoardSize)
	}

	return nil
}
