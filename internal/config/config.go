// Package config provides YAML-based configuration loading and difficulty
// management for robojobs.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/robojobs/internal/level/maze"
)

// Config is the whole robojobs configuration file.
type Config struct {
	Maze       MazeConfig       `yaml:"maze"`
	Shell      ShellConfig      `yaml:"shell"`
	Viewport   ViewportConfig   `yaml:"viewport"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Log        LogConfig        `yaml:"log"`
}

// MazeConfig selects the level generator and its sizes.
type MazeConfig struct {
	Generator  string `yaml:"generator"`
	Width      int    `yaml:"width"`       // rooms across
	Height     int    `yaml:"height"`      // rooms down
	RoomWidth  int    `yaml:"room_width"`  // tiles, walls included
	RoomHeight int    `yaml:"room_height"` // tiles, walls included
}

// ShellConfig tunes the command shell and the robot's senses.
type ShellConfig struct {
	CycleIntervalMS int `yaml:"cycle_interval_ms"`
	VisionDistance  int `yaml:"vision_distance"`
}

// CycleInterval returns the minimum time between two processor cycles.
func (s ShellConfig) CycleInterval() time.Duration {
	return time.Duration(s.CycleIntervalMS) * time.Millisecond
}

// ViewportConfig is the size of the map window in tiles.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LogConfig sets the log level name (debug, info, warn, error).
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the hardcoded configuration used when no file is found.
func Default() Config {
	return Config{
		Maze: MazeConfig{
			Generator:  "deathmountain",
			Width:      maze.DefaultWidth,
			Height:     maze.DefaultHeight,
			RoomWidth:  maze.DefaultRoomWidth,
			RoomHeight: maze.DefaultRoomHeight,
		},
		Shell: ShellConfig{
			CycleIntervalMS: 50,
			VisionDistance:  10,
		},
		Viewport: ViewportConfig{
			Width:  24,
			Height: 20,
		},
		Difficulty: DifficultyConfig{
			Enabled:   false,
			GrowEvery: 2,
			MaxWidth:  maze.DefaultWidth,
			MaxHeight: maze.DefaultHeight,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate reports the first field that cannot be used.
func (c Config) Validate() error {
	m := c.Maze
	if m.Generator == "" {
		return fmt.Errorf("config: maze.generator is empty")
	}
	if m.Width < 1 || m.Height < 1 || m.Width*m.Height < 2 {
		return fmt.Errorf("config: maze size %dx%d needs at least two rooms", m.Width, m.Height)
	}
	if m.RoomWidth < maze.MinRoomSize || m.RoomHeight < maze.MinRoomSize {
		return fmt.Errorf("config: room size %dx%d is below %d", m.RoomWidth, m.RoomHeight, maze.MinRoomSize)
	}
	if c.Shell.CycleIntervalMS <= 0 {
		return fmt.Errorf("config: shell.cycle_interval_ms must be positive, got %d", c.Shell.CycleIntervalMS)
	}
	if c.Shell.VisionDistance <= 0 {
		return fmt.Errorf("config: shell.vision_distance must be positive, got %d", c.Shell.VisionDistance)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("config: viewport %dx%d must be positive", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Difficulty.Enabled && c.Difficulty.GrowEvery <= 0 {
		return fmt.Errorf("config: difficulty.grow_every must be positive, got %d", c.Difficulty.GrowEvery)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	return nil
}
