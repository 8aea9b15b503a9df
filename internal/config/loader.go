package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "robojobs.yaml"

// Load reads the configuration. Fields missing from a file keep their
// default values.
// Search order: customPath -> ~/.robojobs/config.yaml -> ./configs/robojobs.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return finish(cfg, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return finish(cfg, userCfgPath)
			}
			cfg = Default()
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", FileName)
	if data, err := os.ReadFile(localPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return finish(cfg, localPath)
		}
		cfg = Default()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return finish(cfg, "embedded")
}

func finish(cfg Config, source string) (Config, error) {
	if cfg.Difficulty.Preset != "" {
		ApplyPreset(&cfg, cfg.Difficulty.Preset)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".robojobs", filename)
}

// DataPath returns a path under ~/.robojobs, used for the job database.
func DataPath(filename string) string {
	return userConfigPath(filename)
}
