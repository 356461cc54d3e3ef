package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables consulted by the loader and the CLI.
const (
	EnvConfigPath = "FLAPPYBALL_CONFIG"
	EnvLogLevel   = "FLAPPYBALL_LOG_LEVEL"
)

// Load loads the flappyball configuration.
// Search order: customPath -> $FLAPPYBALL_CONFIG -> ~/.flappyball/flappyball.yaml
// -> ./configs/flappyball.yaml -> embedded default.
// Files are decoded on top of the defaults, so a file may override only the
// settings it cares about. The result is always validated.
func Load(customPath string) (FlappyBallConfig, error) {
	if customPath == "" {
		customPath = GetEnv(EnvConfigPath, "")
	}

	// An explicitly requested file must exist and parse
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	// Discovered files are optional, but one that exists must parse
	for _, path := range []string{userConfigPath("flappyball.yaml"), filepath.Join("configs", "flappyball.yaml")} {
		if path == "" {
			continue
		}
		cfg, err := loadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	cfg, err := Parse(defaultFlappyBallYAML)
	if err != nil {
		cfg = DefaultFlappyBallConfig() // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// Parse decodes a YAML document on top of the built-in defaults.
func Parse(data []byte) (FlappyBallConfig, error) {
	cfg := DefaultFlappyBallConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse yaml: %w", err)
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg FlappyBallConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode yaml: %w", err)
	}
	return data, nil
}

// loadFile reads and decodes a single config file.
func loadFile(path string) (FlappyBallConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FlappyBallConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg := DefaultFlappyBallConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappyball", filename)
}
