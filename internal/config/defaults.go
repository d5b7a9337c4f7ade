package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default game tuning. The constants mirror
// the embedded defaults/tetris.yaml and serve as the last-resort fallback.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Well: WellConfig{
			Columns: 10,
			Rows:    20,
		},
		Gravity: GravityConfig{
			BaseInterval: 0.6,
			MinInterval:  0.05,
			LevelStep:    0.05,
		},
		Scoring: ScoringConfig{
			Single:        40,
			Double:        100,
			Triple:        300,
			Tetris:        1200,
			LinesPerLevel: 10,
		},
	}
}
