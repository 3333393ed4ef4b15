package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List rule presets",
	Long:  `Shows the rule presets accepted by --preset.`,
	RunE:  runPresets,
}

func runPresets(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Available presets:")
	fmt.Fprintln(w)

	// Print header
	fmt.Fprintf(w, "  %-9s  %-6s  %s\n", "Name", "Board", "Fleet")
	fmt.Fprintf(w, "  %-9s  %-6s  %s\n", "----", "-----", "-----")

	for _, p := range config.Presets() {
		cfg := config.DefaultConfig()
		if err := config.ApplyPreset(&cfg, p); err != nil {
			return err
		}
		fleet := make([]string, 0, len(cfg.Fleet))
		for _, sc := range cfg.Fleet {
			fleet = append(fleet, fmt.Sprintf("%d x %d-cell", sc.Count, sc.Length))
		}
		board := fmt.Sprintf("%dx%d", cfg.Board.Size, cfg.Board.Size)
		fmt.Fprintf(w, "  %-9s  %-6s  %s\n", p, board, strings.Join(fleet, ", "))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'battleship console --preset <name>' to use one.")
	return nil
}
