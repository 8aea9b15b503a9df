// Package simple registers the fixed 5x5 practice room.
package simple

import (
	"github.com/vovakirdan/robojobs/internal/level"
	"github.com/vovakirdan/robojobs/internal/registry"
)

// ID is the registry name of this generator.
const ID = "simple"

func init() {
	registry.Register(ID, func() registry.Generator { return Generator{} })
}

// Generator always returns level.Simple.
type Generator struct{}

func (Generator) ID() string    { return ID }
func (Generator) Title() string { return "Practice Room" }

func (Generator) Generate(registry.Options) (level.State, error) {
	return level.Simple(), nil
}
