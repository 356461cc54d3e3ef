package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappyball/internal/platform/window"
)

var (
	flagScale       float64
	flagWindowSound bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window showing the game at its native resolution.

Controls:
  Space/Up/W/Enter  - Start, restart or flap
  Left click        - Start, restart or flap
  Q/Esc             - Quit (closing the window works too)

Examples:
  flappyball window
  flappyball window --scale 1.5 --sound`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
	windowCmd.Flags().BoolVar(&flagWindowSound, "sound", true, "Play sound effects")
}

func runWindow(_ *cobra.Command, _ []string) error {
	volume := 0.0
	if flagWindowSound {
		volume = 0.5
	}

	s, err := newSession(os.Stderr, volume)
	if err != nil {
		return err
	}
	defer s.close()

	s.logger.Info("opening window", "seed", s.driver.Seed(), "scale", flagScale)

	w, h := int(s.cfg.Screen.Width), int(s.cfg.Screen.Height)
	if err := window.Run(s.driver, w, h, s.cfg.TickRate, flagScale); err != nil {
		return err
	}

	s.printJournal()
	return nil
}
