package game

import (
	"github.com/vovakirdan/robojobs/internal/config"
	"github.com/vovakirdan/robojobs/internal/level"
	"github.com/vovakirdan/robojobs/internal/registry"
)

// LevelInfo describes how a level was made.
type LevelInfo struct {
	Generator string
	Seed      int64
	Width     int // rooms across
	Height    int // rooms down
}

// LevelSource builds the level played after cleared wins.
type LevelSource interface {
	Next(cleared int) (level.State, LevelInfo, error)
}

// Levels draws levels from a registered generator. Each level gets its own
// seed so a session replays identically from the same base seed.
type Levels struct {
	generator  string
	opts       registry.Options
	difficulty *config.DifficultyManager
}

// NewLevels reads the maze and difficulty sections of cfg.
func NewLevels(cfg config.Config, seed int64) *Levels {
	return &Levels{
		generator: cfg.Maze.Generator,
		opts: registry.Options{
			Width:      cfg.Maze.Width,
			Height:     cfg.Maze.Height,
			RoomWidth:  cfg.Maze.RoomWidth,
			RoomHeight: cfg.Maze.RoomHeight,
			Seed:       seed,
		},
		difficulty: config.NewDifficultyManager(cfg),
	}
}

// Next generates the level for the given number of wins.
func (l *Levels) Next(cleared int) (level.State, LevelInfo, error) {
	opts := l.opts
	opts.Width, opts.Height = l.difficulty.MazeSize(cleared)
	opts.Seed += int64(cleared)

	info := LevelInfo{Generator: l.generator, Seed: opts.Seed, Width: opts.Width, Height: opts.Height}
	lvl, err := registry.Generate(l.generator, opts)
	return lvl, info, err
}
