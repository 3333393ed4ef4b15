package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a match would use, after the config search
order and --preset are applied. Redirect it to a file to start your own:

  battleship config > ~/.battleship/configs/battleship.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagConfigDefault {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
