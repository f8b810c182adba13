// Package config loads the game settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Card geometry in tile units.
const (
	CardTilesW = 6
	CardTilesH = 8
	// cardPitch matches the tray's slot spacing in card widths.
	cardPitch = 1.2
	// edgeMargin is the tray's fixed left/right inset in pixels.
	edgeMargin = 30
)

type Config struct {
	ScreenWidth  int     `env:"SCREEN_WIDTH" envDefault:"640"`
	ScreenHeight int     `env:"SCREEN_HEIGHT" envDefault:"480"`
	TileSize     float64 `env:"TILE_SIZE" envDefault:"8"`
	HandSize     int     `env:"HAND_SIZE" envDefault:"5"`
	// Seed drives shuffling and the opponent's picks. 0 picks a random seed.
	Seed         int64  `env:"SEED" envDefault:"0"`
	PlayerName   string `env:"PLAYER_NAME" envDefault:"You"`
	OpponentName string `env:"OPPONENT_NAME" envDefault:"Computer"`
	// DeckFile is a deck list, the built-in list is used when empty.
	DeckFile  string `env:"DECK_FILE"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
	TPS       int    `env:"TPS" envDefault:"60"`
}

// Prefix is prepended to every environment variable name.
const Prefix = "CARDFLIP_"

// Parse reads the configuration from the environment without validating it.
func Parse() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	return LoadWith(nil)
}

// LoadWith reads the environment, lets override replace any value and then
// validates the result once.
func LoadWith(override func(*Config)) (Config, error) {
	cfg, err := Parse()
	if err != nil {
		return Config{}, err
	}
	if override != nil {
		override(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

var (
	ErrScreenSize = errors.New("screen size must be positive")
	ErrHandSize   = errors.New("hand does not fit the screen")
	ErrLogFormat  = errors.New("unknown log format")
)

func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 || c.TileSize <= 0 {
		return fmt.Errorf("%w: %dx%d tile %v", ErrScreenSize, c.ScreenWidth, c.ScreenHeight, c.TileSize)
	}
	if c.HandSize <= 0 {
		return fmt.Errorf("%w: hand size %d", ErrHandSize, c.HandSize)
	}
	// both hands run in from opposite edges and must not cross the centre
	if c.HandWidth() > float64(c.ScreenWidth)/2 {
		return fmt.Errorf("%w: %d cards need %.0fpx per side, have %dpx",
			ErrHandSize, c.HandSize, c.HandWidth(), c.ScreenWidth/2)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: %q", ErrLogFormat, c.LogFormat)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	return nil
}

func (c Config) CardWidth() float64  { return CardTilesW * c.TileSize }
func (c Config) CardHeight() float64 { return CardTilesH * c.TileSize }

// HandWidth is the horizontal space one hand takes from its screen edge.
func (c Config) HandWidth() float64 {
	return edgeMargin + cardPitch*c.CardWidth()*float64(c.HandSize-1) + c.CardWidth()
}
