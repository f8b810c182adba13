/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SvenDH/go-card-flip/ui"
	"github.com/SvenDH/go-card-flip/ui/screens"
)

var (
	playScale int
	playDebug bool
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the table in a window.

Controls:
  Click/Tap       - Commit a hand card
  Left/Right      - Move the keyboard cursor along your hand
  Enter/Space     - Commit the card under the cursor
  N               - Start the next round after a reveal
  ESC             - Quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := screens.NewTable(cfg, logger)
		if err != nil {
			return err
		}

		// Window setup
		ebiten.SetWindowSize(cfg.ScreenWidth*playScale, cfg.ScreenHeight*playScale)
		ebiten.SetWindowTitle("Card Flip")

		logger.Info("starting game loop",
			zap.Int("width", cfg.ScreenWidth),
			zap.Int("height", cfg.ScreenHeight),
			zap.Int("tps", cfg.TPS),
		)
		// Start the game loop
		prog := &ui.Program{
			M:         table,
			Width:     cfg.ScreenWidth,
			Height:    cfg.ScreenHeight,
			TPS:       cfg.TPS,
			ShowDebug: playDebug,
		}
		return ebiten.RunGame(prog)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().IntVarP(&playScale, "scale", "s", 2, "Window scale factor")
	playCmd.Flags().BoolVar(&playDebug, "debug", false, "Show TPS/FPS overlay")
}
