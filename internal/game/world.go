// Package game sequences play: it owns the world state, reduces player and
// clock actions into new worlds, and moves between the start, composing,
// running and cutscene phases.
package game

import (
	"time"

	"github.com/vovakirdan/robojobs/internal/level"
	"github.com/vovakirdan/robojobs/internal/robot"
	"github.com/vovakirdan/robojobs/internal/shell"
)

// Phase is the stage of play.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseComposing
	PhaseRunning
	PhaseCutscene
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseComposing:
		return "composing"
	case PhaseRunning:
		return "running"
	case PhaseCutscene:
		return "cutscene"
	default:
		return "unknown"
	}
}

// Source is the text of a job as the player wrote it.
type Source struct {
	Name  string
	Text  string
	Dirty bool // edited since the last successful build
}

// World is everything the front end shows. Treat it as immutable; Reduce
// returns a new World.
type World struct {
	Phase    Phase
	Loaded   bool
	Level    level.State
	Info     LevelInfo
	CPU      robot.Processor
	LastTick time.Time
	Cycles   int // processor cycles spent on this level

	TerminalLine string
	CommandError *shell.CommandError
	Completions  []string
	Issue        string

	Sources map[string]Source
	EditJob string // job open in the editor, empty when none

	Cleared int // levels won so far
}

// NewWorld returns the world before anything is loaded.
func NewWorld() World {
	return World{
		Phase:   PhaseStart,
		CPU:     robot.NewProcessor(),
		Sources: map[string]Source{},
	}
}

// Playing reports whether the robot can be commanded.
func (w World) Playing() bool {
	return w.Phase == PhaseComposing || w.Phase == PhaseRunning
}
