package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const levelsFile = "levels.yaml"

// LoadLevels loads the level table.
// Search order: customPath -> ~/.skytype/configs/levels.yaml -> ./configs/levels.yaml -> embedded default
// A custom path that cannot be read, parsed or validated is an error; the
// other locations are skipped silently when unusable.
func LoadLevels(customPath string) (LevelTable, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LevelTable{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseLevels(data)
		if err != nil {
			return LevelTable{}, fmt.Errorf("failed to load config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(levelsFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseLevels(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", levelsFile)); err == nil {
		if cfg, err := ParseLevels(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseLevels(defaultLevelsYAML)
	if err != nil {
		return DefaultLevelTable(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseLevels decodes and validates a level table document.
func ParseLevels(data []byte) (LevelTable, error) {
	var cfg LevelTable
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LevelTable{}, fmt.Errorf("config: parse levels: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return LevelTable{}, err
	}
	return cfg, nil
}

// WriteDefault writes the embedded default level table to path, creating
// parent directories. Existing files are not overwritten.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config: %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	if err := os.WriteFile(path, defaultLevelsYAML, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// UserConfigPath returns the per-user level table location.
func UserConfigPath() string {
	return userConfigPath(levelsFile)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skytype", "configs", filename)
}
