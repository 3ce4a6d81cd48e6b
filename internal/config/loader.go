package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file configuration.
const (
	EnvBreakInterval = "CYCLIST_BREAK_INTERVAL"
	EnvStartLives    = "CYCLIST_START_LIVES"
)

// LoadCyclist loads the game configuration.
// Search order: customPath -> ~/.cyclist/cyclist.yaml -> ./configs/cyclist.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadCyclist(customPath string) (CyclistConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CyclistConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return CyclistConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("cyclist.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "cyclist.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultCyclistYAML)
	if err != nil {
		return DefaultCyclistConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (CyclistConfig, error) {
	cfg := DefaultCyclistConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CyclistConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return CyclistConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg CyclistConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// ApplyEnv loads envFile (".env" when empty) into the process environment if
// it exists, then applies CYCLIST_* overrides to cfg. Variables already set
// in the environment take precedence over the file.
func ApplyEnv(cfg *CyclistConfig, envFile string) error {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: failed to load %s: %w", envFile, err)
	}

	if v, ok := os.LookupEnv(EnvBreakInterval); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvBreakInterval, err)
		}
		cfg.Breaks.Interval = d
	}

	if v, ok := os.LookupEnv(EnvStartLives); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", EnvStartLives, err)
		}
		cfg.Player.StartLives = n
	}

	return cfg.Validate()
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cyclist", filename)
}
