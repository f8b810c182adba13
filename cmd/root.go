/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SvenDH/go-card-flip/config"
)

var (
	cfg    config.Config
	logger *zap.Logger

	flagHandSize int
	flagSeed     int64
	flagDeckFile string
	flagLogLevel string
	flagLogFmt   string
	flagWidth    int
	flagHeight   int
	flagTPS      int
	flagPlayer   string
	flagOpponent string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cardflip",
	Short: "A two-player reflex card game",
	Long: `Both players keep a hand of cards on the table. Pick one of yours and
the opponent commits a random card of theirs; once both reach the pot the
opponent's card is flipped.

Settings are read from CARDFLIP_* environment variables and can be
overridden with flags.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = loadConfig(cmd); err != nil {
			return err
		}
		logger, err = newLogger(cfg.LogLevel, cfg.LogFormat)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()
	return config.LoadWith(func(c *config.Config) {
		if flags.Changed("hand-size") {
			c.HandSize = flagHandSize
		}
		if flags.Changed("seed") {
			c.Seed = flagSeed
		}
		if flags.Changed("deck") {
			c.DeckFile = flagDeckFile
		}
		if flags.Changed("log-level") {
			c.LogLevel = flagLogLevel
		}
		if flags.Changed("log-format") {
			c.LogFormat = flagLogFmt
		}
		if flags.Changed("width") {
			c.ScreenWidth = flagWidth
		}
		if flags.Changed("height") {
			c.ScreenHeight = flagHeight
		}
		if flags.Changed("tps") {
			c.TPS = flagTPS
		}
		if flags.Changed("player") {
			c.PlayerName = flagPlayer
		}
		if flags.Changed("opponent") {
			c.OpponentName = flagOpponent
		}
	})
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVarP(&flagHandSize, "hand-size", "n", 5, "Number of hand slots per side")
	pf.Int64Var(&flagSeed, "seed", 0, "Random seed for shuffling and opponent picks (0 = random)")
	pf.StringVarP(&flagDeckFile, "deck", "d", "", "Deck list file (default: built-in deck)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn or error")
	pf.StringVar(&flagLogFmt, "log-format", "console", "Log format: console or json")
	pf.IntVar(&flagWidth, "width", 640, "Screen width in pixels")
	pf.IntVar(&flagHeight, "height", 480, "Screen height in pixels")
	pf.IntVar(&flagTPS, "tps", 60, "Updates per second")
	pf.StringVar(&flagPlayer, "player", "You", "Name shown on the player's side")
	pf.StringVar(&flagOpponent, "opponent", "Computer", "Name shown on the opponent's side")
}
