// Package config provides YAML-based game tuning and difficulty presets
// for the tetris platform.
package config

// TetrisConfig contains all tunable parameters for the game.
type TetrisConfig struct {
	Well    WellConfig    `yaml:"well"`
	Gravity GravityConfig `yaml:"gravity"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// WellConfig defines the playfield dimensions.
type WellConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// GravityConfig defines the fall-speed progression. Intervals are in seconds:
// a piece is forced down one row every interval, and the interval shrinks by
// LevelStep per level, floored at MinInterval.
type GravityConfig struct {
	BaseInterval float64 `yaml:"base_interval"`
	MinInterval  float64 `yaml:"min_interval"`
	LevelStep    float64 `yaml:"level_step"`
}

// ScoringConfig defines the reward table for simultaneous line clears and
// the level progression. Rewards are multiplied by the level at lock time.
type ScoringConfig struct {
	Single        int `yaml:"single"`
	Double        int `yaml:"double"`
	Triple        int `yaml:"triple"`
	Tetris        int `yaml:"tetris"`
	LinesPerLevel int `yaml:"lines_per_level"`
}

// RewardFor returns the base reward for clearing the given number of rows at
// once. Counts outside the table (including 0) score nothing.
func (s ScoringConfig) RewardFor(cleared int) int {
	switch cleared {
	case 1:
		return s.Single
	case 2:
		return s.Double
	case 3:
		return s.Triple
	case 4:
		return s.Tetris
	default:
		return 0
	}
}

// IntervalForLevel returns the fall interval in seconds at the given level.
// Monotonically non-increasing in level, floored at MinInterval.
func (g GravityConfig) IntervalForLevel(level int) float64 {
	if level < 1 {
		level = 1
	}
	interval := g.BaseInterval - float64(level-1)*g.LevelStep
	if interval < g.MinInterval {
		return g.MinInterval
	}
	return interval
}

// DifficultyPreset represents a named gravity tuning.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyTetrisPreset modifies the gravity tuning based on a difficulty preset.
// "fixed" keeps the configured base interval but disables speedup per level.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.BaseInterval = 0.8
		cfg.Gravity.LevelStep = 0.04
	case DifficultyNormal:
		cfg.Gravity.BaseInterval = 0.6
		cfg.Gravity.LevelStep = 0.05
	case DifficultyHard:
		cfg.Gravity.BaseInterval = 0.4
		cfg.Gravity.LevelStep = 0.05
	case DifficultyFixed:
		cfg.Gravity.LevelStep = 0
	}
}
