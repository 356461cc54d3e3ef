// flappyball is a one-button arcade game: keep the ball in the air and steer
// it through the gaps of scrolling pipes.
//
// Usage:
//
//	flappyball play          - Play in the terminal (bubbletea or tcell)
//	flappyball window        - Play in a desktop window
//	flappyball simulate      - Run a headless session with an autopilot
//	flappyball config        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Load settings from a YAML file
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
//	--journal <order>   - List runs on exit by best score or by session
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappyball/internal/audio"
	"github.com/vovakirdan/flappyball/internal/config"
	"github.com/vovakirdan/flappyball/internal/platform"
	"github.com/vovakirdan/flappyball/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagJournal  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappyball",
	Short: "Flappy Ball - a one-button arcade game",
	Long: `Flappy Ball keeps a ball in the air between scrolling pipes.
Press Space, Up, Enter or click to start a session and to flap.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  simulate  - Run a headless session driven by an autopilot
  config    - Print the effective configuration

Examples:
  flappyball play
  flappyball play --frontend tcell --sound
  flappyball window --scale 1.5
  flappyball simulate --ticks 20000 --seed 42
  flappyball simulate --journal sessions
  flappyball config --config ./my-flappyball.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level",
		config.GetEnv(config.EnvLogLevel, "info"), "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagJournal, "journal", "best", "Run journal order on exit: best or sessions")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies the --fps override.
func loadConfig() (config.FlappyBallConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg, nil
}

// newLogger builds the process logger. Logs go to --log-file when set and to
// fallback otherwise. The returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "flappyball",
		Level:           level,
	})
	return logger, closer, nil
}

// session bundles what every subcommand needs to run the game.
type session struct {
	cfg    config.FlappyBallConfig
	driver *platform.Driver
	store  *storage.Store
	player audio.Player
	logger *log.Logger
	order  platform.JournalOrder
	close  func()
}

// newSession loads config, opens the run journal and creates the driver.
// Logs go to logOut unless --log-file is set. A volume above zero plays sound
// through the system speaker when one is available.
func newSession(logOut io.Writer, volume float64) (*session, error) {
	logger, closeLog, err := newLogger(logOut)
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig()
	if err != nil {
		closeLog()
		return nil, err
	}

	order, err := platform.ParseJournalOrder(flagJournal)
	if err != nil {
		closeLog()
		return nil, err
	}

	// The game still works without a journal
	store, err := storage.Open()
	if err != nil {
		logger.Warn("run journal unavailable", "err", err)
		store = nil
	}

	var player audio.Player = audio.Nop{}
	if volume > 0 {
		sp, err := audio.NewSpeaker(volume)
		if err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			player = sp
		}
	}

	d := platform.NewDriver(platform.Options{
		Config: cfg,
		Seed:   flagSeed,
		Store:  store,
		Player: player,
		Logger: logger,
	}, time.Now())

	s := &session{cfg: cfg, driver: d, store: store, player: player, logger: logger, order: order}
	s.close = func() {
		if err := player.Close(); err != nil {
			logger.Warn("closing audio", "err", err)
		}
		if store != nil {
			store.Close()
		}
		closeLog()
	}
	return s, nil
}

// printJournal writes the run journal to stdout.
func (s *session) printJournal() {
	out, err := platform.RenderJournal(s.store, s.order)
	if err != nil {
		s.logger.Warn("cannot read run journal", "err", err)
		return
	}
	if out != "" {
		fmt.Println(out)
	}
}
