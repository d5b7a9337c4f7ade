package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads the game tuning.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	var cfg TetrisConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		fillMissing(&cfg)
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tetris.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				fillMissing(&cfg)
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/tetris.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			fillMissing(&cfg)
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	fillMissing(&cfg)
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}

// fillMissing replaces zero-valued fields with defaults so a partial YAML
// file cannot produce an unplayable well or a frozen gravity timer.
func fillMissing(cfg *TetrisConfig) {
	def := DefaultTetrisConfig()

	if cfg.Well.Columns <= 0 {
		cfg.Well.Columns = def.Well.Columns
	}
	if cfg.Well.Rows <= 0 {
		cfg.Well.Rows = def.Well.Rows
	}
	if cfg.Gravity.BaseInterval <= 0 {
		cfg.Gravity.BaseInterval = def.Gravity.BaseInterval
	}
	if cfg.Gravity.MinInterval <= 0 {
		cfg.Gravity.MinInterval = def.Gravity.MinInterval
	}
	if cfg.Gravity.LevelStep < 0 {
		cfg.Gravity.LevelStep = def.Gravity.LevelStep
	}
	if cfg.Scoring.Single <= 0 {
		cfg.Scoring.Single = def.Scoring.Single
	}
	if cfg.Scoring.Double <= 0 {
		cfg.Scoring.Double = def.Scoring.Double
	}
	if cfg.Scoring.Triple <= 0 {
		cfg.Scoring.Triple = def.Scoring.Triple
	}
	if cfg.Scoring.Tetris <= 0 {
		cfg.Scoring.Tetris = def.Scoring.Tetris
	}
	if cfg.Scoring.LinesPerLevel <= 0 {
		cfg.Scoring.LinesPerLevel = def.Scoring.LinesPerLevel
	}
}
