package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Lookup finds a config file by name.
// Search order: customPath -> ~/.arcade/configs/<filename> -> ./configs/<filename>.
// It returns the file contents and the path they came from, or nil data if
// no file exists outside the custom path. A custom path that cannot be read
// is an error.
func Lookup(customPath, filename string) ([]byte, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		return data, customPath, nil
	}

	if p := userConfigPath(filename); p != "" {
		if data, err := os.ReadFile(p); err == nil {
			return data, p, nil
		}
	}

	local := filepath.Join("configs", filename)
	if data, err := os.ReadFile(local); err == nil {
		return data, local, nil
	}
	return nil, "", nil
}

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.arcade/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadSnake(customPath string) (SnakeConfig, error) {
	data, source, err := Lookup(customPath, "snake.yaml")
	if err != nil {
		return DefaultSnakeConfig(), err
	}

	cfg := DefaultSnakeConfig()
	if data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			if customPath != "" {
				return cfg, fmt.Errorf("config: failed to parse %s: %w", source, err)
			}
			// A broken user or local file falls through to the embedded default.
			cfg = DefaultSnakeConfig()
			data = nil
		}
	}

	if data == nil {
		if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
			cfg = DefaultSnakeConfig() // Fallback to hardcoded if embed fails
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
