package shell

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/robojobs/internal/core"
	"github.com/vovakirdan/robojobs/internal/level"
	"github.com/vovakirdan/robojobs/internal/robot"
)

// IssueOutOfBounds is recorded when the robot walks into something.
const IssueOutOfBounds = "move out of bounds"

// world binds the processor's senses and actuators to one level snapshot and
// the robot standing in it. Actuators build next; the snapshot is never written.
type world struct {
	state  level.State
	robot  level.Actor
	vision int
	logger *log.Logger

	next  level.State
	issue string
}

func newWorld(state level.State, r level.Actor, vision int, logger *log.Logger) *world {
	return &world{state: state, robot: r, vision: vision, logger: logger, next: state}
}

// PropOf returns what the robot's senses report for a character.
func PropOf(c level.CharacterType) robot.Prop {
	switch c {
	case level.Hero:
		return robot.PropHero
	case level.Goblin:
		return robot.PropMonster
	default:
		return robot.PropTreasure
	}
}

func (w *world) Orientation() core.Orientation {
	return w.robot.Orientation
}

// Look walks from the tile ahead. Actors hide what they stand on; impassable
// furniture reads as wall; marks are seen last.
func (w *world) Look(delta core.Point) (robot.Sighting, bool) {
	check := w.robot.Position.Origin().Add(delta)
	for i := 0; i < w.vision; i++ {
		stuff, ok := w.state.StuffAt(check)
		if !ok {
			break
		}
		if len(stuff.Actors) > 0 {
			return robot.Sighting{What: PropOf(stuff.Actors[0].Kind), Distance: i}, true
		}
		if !level.Passable(stuff.Furniture) {
			return robot.Sighting{What: robot.PropWall, Distance: i}, true
		}
		if stuff.Mark {
			return robot.Sighting{What: robot.PropMark, Distance: i}, true
		}
		check = check.Add(delta)
	}
	return robot.Sighting{}, false
}

func (w *world) target(delta core.Point) core.Point {
	return w.robot.Position.Origin().Add(delta)
}

func (w *world) Eat(delta core.Point) {
	pt := w.target(delta)
	w.logger.Info("eat", "x", pt.X, "y", pt.Y)
}

func (w *world) Punch(delta core.Point) {
	pt := w.target(delta)
	w.logger.Info("punch", "x", pt.X, "y", pt.Y)
}

func (w *world) Go(delta core.Point) {
	pt := w.target(delta)
	if !w.state.Terrain.InBounds(pt.X, pt.Y) {
		w.issue = IssueOutOfBounds
		return
	}
	w.next = w.state.Relocate(w.robot, pt)
}

func (w *world) Turn(o core.Orientation) {
	w.next = w.state.Turn(w.robot, o)
}

func (w *world) Setmark() {
	p := w.robot.Position.Origin()
	w.next = w.state.SetMark(p.X, p.Y)
}

func (w *world) Erase() {
	p := w.robot.Position.Origin()
	w.next = w.state.EraseMark(p.X, p.Y)
}
