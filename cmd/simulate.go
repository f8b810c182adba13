/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/SvenDH/go-card-flip/match"
)

var (
	simFrames int
	simRounds int
	simThink  int
	simLinger int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play a match headless with random picks",
	Long: `Run the table without a window. Every time the pot is empty a random
hand card is committed, and a new round starts shortly after each reveal.
The run ends at the frame or round limit or when a hand runs dry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := match.New(cfg, logger)
		if err != nil {
			return err
		}
		_, err = m.Simulate(match.AutoplayOptions{
			Frames: simFrames,
			DT:     1 / float32(cfg.TPS),
			Think:  simThink,
			Linger: simLinger,
			Rounds: simRounds,
		}, cmd.OutOrStdout())
		return err
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().IntVarP(&simFrames, "frames", "f", 3600, "Maximum number of frames (0 = no limit)")
	simulateCmd.Flags().IntVarP(&simRounds, "rounds", "r", 0, "Stop after this many reveals (0 = no limit)")
	simulateCmd.Flags().IntVar(&simThink, "think", 20, "Frames to wait before committing a card")
	simulateCmd.Flags().IntVar(&simLinger, "linger", 30, "Frames a reveal stays before the next round")
}
