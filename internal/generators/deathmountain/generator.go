// Package deathmountain registers the grid-of-rooms maze generator.
package deathmountain

import (
	"math/rand"

	"github.com/vovakirdan/robojobs/internal/level"
	"github.com/vovakirdan/robojobs/internal/level/maze"
	"github.com/vovakirdan/robojobs/internal/registry"
)

// ID is the registry name of this generator.
const ID = "deathmountain"

func init() {
	registry.Register(ID, func() registry.Generator { return Generator{} })
}

// Generator builds Death Mountain levels.
type Generator struct{}

func (Generator) ID() string    { return ID }
func (Generator) Title() string { return "Death Mountain" }

// Generate carves a maze of rooms; zero sizes fall back to the defaults.
func (Generator) Generate(opts registry.Options) (level.State, error) {
	p := maze.DefaultParams(rand.New(rand.NewSource(opts.Seed)))
	if opts.Width > 0 {
		p.Width = opts.Width
	}
	if opts.Height > 0 {
		p.Height = opts.Height
	}
	if opts.RoomWidth > 0 {
		p.RoomWidth = opts.RoomWidth
	}
	if opts.RoomHeight > 0 {
		p.RoomHeight = opts.RoomHeight
	}

	lvl, err := maze.Generate(p)
	if err != nil {
		return level.State{}, err
	}
	return maze.NewLevelState(lvl), nil
}
