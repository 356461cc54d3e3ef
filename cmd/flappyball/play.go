package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappyball/internal/platform/tcellui"
	"github.com/vovakirdan/flappyball/internal/platform/tui"
)

var (
	flagFrontend string
	flagSound    bool
	flagVolume   float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The play area is scaled to fit the
window and keeps its proportions.

Controls:
  Space/Up/W/Enter  - Start, restart or flap
  Left click        - Start, restart or flap
  Q/Esc/Ctrl+C      - Quit

Frontends:
  bubbletea  - Full-featured frontend with a help line (default)
  tcell      - Lightweight direct-draw frontend

Examples:
  flappyball play
  flappyball play --frontend tcell
  flappyball play --sound --volume 0.3
  flappyball play --seed 42 --log-file play.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "bubbletea", "Terminal frontend: bubbletea or tcell")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume between 0 and 1")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagFrontend != "bubbletea" && flagFrontend != "tcell" {
		return fmt.Errorf("unknown frontend %q (use bubbletea or tcell)", flagFrontend)
	}

	volume := 0.0
	if flagSound {
		volume = flagVolume
	}

	// Logging to stderr would tear the alternate screen
	s, err := newSession(io.Discard, volume)
	if err != nil {
		return err
	}
	defer s.close()

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	s.logger.Info("starting", "frontend", flagFrontend, "seed", s.driver.Seed(), "size", fmt.Sprintf("%dx%d", width, height))

	var runErr error
	switch flagFrontend {
	case "tcell":
		runErr = tcellui.Run(s.driver, s.cfg.TickRate)
	default:
		runErr = tui.Run(s.driver, s.cfg.TickRate, width, height)
	}
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}

	s.printJournal()
	return nil
}
