package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappyball/internal/core"
	"github.com/vovakirdan/flappyball/internal/games/flappyball"
)

var (
	flagTicks     int
	flagSessions  int
	flagFlapEvery int
	flagFrame     bool
)

// Size of the text frame printed by --frame.
const (
	frameCols = 80
	frameRows = 24
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless session driven by an autopilot",
	Long: `Play without a screen on synthetic time. The autopilot restarts after
every crash until the tick or session limit is reached, then the run journal
is printed.

Pilots:
  default        - Aims for the bottom of the next gap
  --flap-every N - Flaps every N ticks regardless of the pipes

Examples:
  flappyball simulate
  flappyball simulate --ticks 20000 --seed 42
  flappyball simulate --sessions 5 --flap-every 25 --log-level debug
  flappyball simulate --frame`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 10000, "Maximum number of ticks to run")
	simulateCmd.Flags().IntVar(&flagSessions, "sessions", 3, "Stop after this many finished sessions (0 = no limit)")
	simulateCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 0, "Flap every N ticks instead of steering (0 = autopilot)")
	simulateCmd.Flags().BoolVar(&flagFrame, "frame", false, "Print the last frame as plain text")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	s, err := newSession(os.Stderr, 0)
	if err != nil {
		return err
	}
	defer s.close()

	var pilot flappyball.Pilot = flappyball.NewAutopilot()
	if flagFlapEvery > 0 {
		pilot = &flappyball.Metronome{Every: flagFlapEvery}
	}

	rate := s.cfg.TickRate
	if rate <= 0 {
		rate = 60
	}

	s.logger.Info("simulating", "seed", s.driver.Seed(), "ticks", flagTicks, "sessions", flagSessions)

	snap := s.driver.Snapshot()
	ticks := 0
	for ; ticks < flagTicks; ticks++ {
		if pilot.Decide(snap) {
			s.driver.Push(core.ActionActivate)
		}
		snap = s.driver.StepAt(int64(ticks) * 1000 / int64(rate))

		if flagSessions > 0 && snap.Ended() && snap.Session >= flagSessions {
			ticks++
			break
		}
	}

	s.logger.Info("simulation finished", "ticks", ticks, "sessions", snap.Session, "high_score", snap.HighScore)
	fmt.Printf("Simulated %d ticks with seed %d\n\n", ticks, s.driver.Seed())
	if flagFrame {
		scr := core.NewScreen(frameCols, frameRows)
		snap.Render(scr)
		fmt.Println(scr.String())
		fmt.Println()
	}
	s.printJournal()
	return nil
}
