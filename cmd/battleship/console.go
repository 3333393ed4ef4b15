package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/platform/console"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

var flagNoJournal bool

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Play in line mode",
	Long: `Play against the computer on plain standard input and output.

Coordinates are typed as two numbers, row then column:
  Enter coordinates: 3 4

Both boards are printed after every accepted shot. After a match you are
asked whether to play again; answer N to leave.

Examples:
  battleship console
  battleship console --seed 42
  battleship console --preset extended`,
	RunE: runConsole,
}

func init() {
	consoleCmd.Flags().BoolVar(&flagNoJournal, "no-journal", false, "Do not record matches in the database")
}

func runConsole(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	opts := console.Options{
		Rules:  cfg.Rules(),
		Seed:   flagSeed,
		Player: currentUser(),
		Logger: logger,
	}

	if !flagNoJournal {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open match database", "error", err)
			// Continue without storage - game still works
		} else {
			defer store.Close()
			opts.Journal = store
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return console.New(cmd.InOrStdin(), cmd.OutOrStdout(), opts).Run(ctx)
}
