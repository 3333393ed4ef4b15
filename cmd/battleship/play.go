package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/platform/tui"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the full-screen game",
	Long: `Start the full-screen terminal game with a menu, the two boards side
by side and your match history.

Controls:
  Enter      - Fire at the typed coordinates ("row col")
  Ctrl+N     - New game
  ?          - Show rules
  Esc        - Back to menu
  Ctrl+C     - Quit

Examples:
  battleship play
  battleship play --preset skirmish
  battleship play --log-level debug --log-file ./battleship.log`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the screen is owned by the game)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Config: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flagSeed,
			AIDelay: cfg.AIDelay(),
		},
		Rules:  cfg.Rules(),
		Player: currentUser(),
		Logger: logger,
	}

	// Open match storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open match database", "error", err)
		// Continue without storage - game still works
	} else {
		defer store.Close()
		opts.Journal = store
	}

	return tui.Run(opts)
}
