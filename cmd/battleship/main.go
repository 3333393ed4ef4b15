// battleship is a terminal game of hidden fleets against the computer.
//
// Usage:
//
//	battleship console        - Line-mode game on stdin/stdout
//	battleship play           - Full-screen terminal game
//	battleship serve          - Start SSH server for remote play
//	battleship history        - Show finished matches and the win/loss record
//	battleship presets        - List rule presets
//	battleship config         - Print the effective configuration
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible fleets
//	--db <path>        - Set database path (default: ~/.battleship/matches.db)
//	--config <path>    - Use a custom configuration YAML
//	--preset <name>    - Apply a rule preset (classic, skirmish, extended)
//	--log-level <lvl>  - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPreset   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "battleship",
	Short: "Battleship - sink the hidden fleet in your terminal",
	Long: `Battleship is a terminal game against the computer. Both fleets are
placed at random, ships never touch, and a hit keeps the turn.

Available commands:
  console  - Line-mode game, prompts for "row col"
  play     - Full-screen game with menu and history
  serve    - Start SSH server for remote play
  history  - View finished matches
  presets  - List rule presets
  config   - Print the effective configuration

Examples:
  battleship console
  battleship play --preset skirmish
  battleship serve --ssh :2222
  battleship history --limit 5`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.battleship/matches.db", "Path to match database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom configuration YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Rule preset: classic, skirmish, extended")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the CLI logger at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "battleship",
		Level:           level,
	}), nil
}

// loadSettings loads the configuration and applies --preset.
func loadSettings() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPreset(&cfg, config.Preset(flagPreset)); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// currentUser names the local player in the journal.
func currentUser() string {
	for _, env := range []string{"USER", "USERNAME", "LOGNAME"} {
		if u := os.Getenv(env); u != "" {
			return u
		}
	}
	return "local"
}
