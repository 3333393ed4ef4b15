package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "battleship.yaml"

// Load loads and validates the match configuration.
// Search order: customPath -> ~/.battleship/configs/battleship.yaml ->
// ./configs/battleship.yaml -> embedded default.
// Only a custom path reports read and parse errors; the other locations
// are skipped when missing or broken.
func Load(customPath string) (Config, error) {
	var cfg Config

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if cfg, err = parse(data); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if parsed, err := parse(data); err == nil {
				return parsed, parsed.Validate()
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if parsed, err := parse(data); err == nil {
			return parsed, parsed.Validate()
		}
	}

	parsed, err := parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return parsed, parsed.Validate()
}

// parse decodes YAML on top of the defaults, so omitted keys keep default values.
func parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".battleship", "configs", filename)
}
