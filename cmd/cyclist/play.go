package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cyclist-collector/internal/config"
	"github.com/vovakirdan/cyclist-collector/internal/core"
	"github.com/vovakirdan/cyclist-collector/internal/games/cyclist"
	"github.com/vovakirdan/cyclist-collector/internal/platform/tui"
	"github.com/vovakirdan/cyclist-collector/internal/storage"
)

var (
	flagMute          bool
	flagBreakInterval string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Cyclist Collector",
	Long: `Start playing Cyclist Collector.

Controls:
  Space/Up   - Jump, start, continue
  Enter      - Start, submit quiz answer
  P/Esc      - Pause
  R          - Restart (after game over)
  Tab        - Session history (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit (only Ctrl+C while answering the quiz)

Examples:
  cyclist play
  cyclist play --seed 42 --mute
  cyclist play --break-interval 30s --log cyclist.log --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers play flags. The root command plays too.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable the terminal bell")
	cmd.Flags().StringVar(&flagBreakInterval, "break-interval", "", "Override the break interval (e.g. 90s, 2m)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if flagBreakInterval != "" {
		d, err := parseInterval(flagBreakInterval)
		if err != nil {
			return err
		}
		cfg.Breaks.Interval = d
	}

	logger, closeLog, err := newLogger(flagLogPath, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var audio core.AudioSink = core.NopAudio{}
	if !flagMute {
		audio = tui.NewBellSink(os.Stderr)
	}

	game := cyclist.New(
		cyclist.WithConfig(cfg),
		cyclist.WithAudio(audio),
		cyclist.WithLogger(logger),
	)

	// The run ledger lives only for this session
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open run ledger", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open run ledger: %v\n", err)
		store = nil
	}

	runErr := tui.Run(game, store, runtime, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}

// loadConfig loads the YAML config and applies environment overrides.
func loadConfig() (config.CyclistConfig, error) {
	cfg, err := config.LoadCyclist(flagConfig)
	if err != nil {
		return config.CyclistConfig{}, err
	}
	if err := config.ApplyEnv(&cfg, flagEnvFile); err != nil {
		return config.CyclistConfig{}, err
	}
	return cfg, nil
}

// newLogger returns a logger writing to path, or a discarding logger when
// path is empty. The TUI owns the terminal, so logs never go to stdout.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "cyclist",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }, nil
}
