package config

import "github.com/vovakirdan/robojobs/internal/core"

// DifficultyConfig makes mazes grow as the player clears levels.
type DifficultyConfig struct {
	Enabled   bool             `yaml:"enabled"`
	Preset    DifficultyPreset `yaml:"preset"`
	GrowEvery int              `yaml:"grow_every"` // cleared levels per extra room
	MaxWidth  int              `yaml:"max_width"`
	MaxHeight int              `yaml:"max_height"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// StartSizeForPreset returns the maze size, in rooms, the first level of a preset uses.
func StartSizeForPreset(preset DifficultyPreset) (int, int) {
	switch preset {
	case DifficultyEasy:
		return 2, 2
	case DifficultyNormal:
		return 3, 3
	case DifficultyHard:
		return 5, 5
	default:
		return 0, 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset modifies the config based on a difficulty preset.
// Unknown presets leave the config unchanged.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}

	w, h := StartSizeForPreset(preset)
	if w == 0 {
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Maze.Width, cfg.Maze.Height = w, h
	cfg.Difficulty.MaxWidth = core.Max(cfg.Difficulty.MaxWidth, w)
	cfg.Difficulty.MaxHeight = core.Max(cfg.Difficulty.MaxHeight, h)
}

// DifficultyManager picks the maze size for each new level.
type DifficultyManager struct {
	cfg        DifficultyConfig
	baseWidth  int
	baseHeight int
}

// NewDifficultyManager creates a new difficulty manager starting from the maze size in cfg.
func NewDifficultyManager(cfg Config) *DifficultyManager {
	return &DifficultyManager{
		cfg:        cfg.Difficulty,
		baseWidth:  cfg.Maze.Width,
		baseHeight: cfg.Maze.Height,
	}
}

// IsEnabled returns whether mazes grow between levels.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.GrowEvery > 0
}

// MazeSize returns the size in rooms for the level after cleared wins.
func (d *DifficultyManager) MazeSize(cleared int) (int, int) {
	if !d.IsEnabled() {
		return d.baseWidth, d.baseHeight
	}

	grow := core.Max(cleared, 0) / d.cfg.GrowEvery
	w := core.Min(d.baseWidth+grow, core.Max(d.cfg.MaxWidth, d.baseWidth))
	h := core.Min(d.baseHeight+grow, core.Max(d.cfg.MaxHeight, d.baseHeight))
	return w, h
}
