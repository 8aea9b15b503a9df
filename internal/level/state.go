package level

import (
	"fmt"

	"github.com/vovakirdan/robojobs/internal/core"
)

// CharacterType identifies what an actor is.
type CharacterType int

const (
	Hero CharacterType = iota
	Heart
	Goblin
)

func (c CharacterType) String() string {
	switch c {
	case Hero:
		return "hero"
	case Heart:
		return "heart"
	case Goblin:
		return "goblin"
	default:
		return "unknown"
	}
}

// ParseCharacterType is the inverse of String.
func ParseCharacterType(s string) (CharacterType, error) {
	for _, c := range []CharacterType{Hero, Heart, Goblin} {
		if c.String() == s {
			return c, nil
		}
	}
	return Hero, fmt.Errorf("level: unknown character %q", s)
}

// Glyph returns the rune and palette entry used to draw the character.
func (c CharacterType) Glyph() (rune, core.Color) {
	switch c {
	case Hero:
		return '@', core.ColorHero
	case Heart:
		return '♥', core.ColorHeart
	case Goblin:
		return 'g', core.ColorGoblin
	default:
		return '?', core.ColorError
	}
}

// Actor is a character placed on the level.
// Actors are values; two actors are the same actor when all fields match.
type Actor struct {
	Kind        CharacterType
	Position    core.Rect
	Orientation core.Orientation
}

// NewActor places a 1x1 actor at p.
func NewActor(kind CharacterType, p core.Point, o core.Orientation) Actor {
	return Actor{Kind: kind, Position: core.NewRect(p.X, p.Y, 1, 1), Orientation: o}
}

// Covers reports whether the actor's rectangle includes the tile p.
func (a Actor) Covers(p core.Point) bool {
	return a.Position.Contains(p.X, p.Y)
}

// State is an immutable snapshot of a level.
// Transforms return new states and never write to the receiver's slices.
type State struct {
	Terrain Terrain
	Marks   [][]bool
	Actors  []Actor
}

// NewState creates a state with no marks on the given terrain.
func NewState(terrain Terrain, actors ...Actor) State {
	marks := make([][]bool, terrain.Height())
	for y, row := range terrain.Furniture {
		marks[y] = make([]bool, len(row))
	}
	return State{
		Terrain: terrain,
		Marks:   marks,
		Actors:  append([]Actor(nil), actors...),
	}
}

// Simple builds a 5x5 room with the hero at (2,2) facing east and the heart
// one tile north of it.
func Simple() State {
	n, f := Nothing, Floor
	terrain := Terrain{Furniture: [][]Tile{
		{n, NorthWall, NorthWall, NorthWall, n},
		{WestWall, f, f, f, EastWall},
		{WestWall, f, f, f, EastWall},
		{WestWall, f, f, f, EastWall},
		{n, SouthWall, SouthWall, SouthWall, n},
	}}
	return NewState(terrain,
		NewActor(Hero, core.Pt(2, 2), core.East),
		NewActor(Heart, core.Pt(2, 1), core.South),
	)
}

// Hero returns the level's hero.
func (s State) Hero() (Actor, bool) {
	for _, a := range s.Actors {
		if a.Kind == Hero {
			return a, true
		}
	}
	return Actor{}, false
}

// Mark reports whether a mark is set on (x, y).
func (s State) Mark(x, y int) bool {
	if y < 0 || y >= len(s.Marks) || x < 0 || x >= len(s.Marks[y]) {
		return false
	}
	return s.Marks[y][x]
}

// SetMark returns a state with a mark on (x, y).
// The receiver is returned unchanged if the mark is already set or out of range.
func (s State) SetMark(x, y int) State {
	return s.withMark(x, y, true)
}

// EraseMark returns a state without a mark on (x, y).
// The receiver is returned unchanged if there is no mark.
func (s State) EraseMark(x, y int) State {
	return s.withMark(x, y, false)
}

func (s State) withMark(x, y int, value bool) State {
	if y < 0 || y >= len(s.Marks) || x < 0 || x >= len(s.Marks[y]) {
		return s
	}
	if s.Marks[y][x] == value {
		return s
	}

	marks := make([][]bool, len(s.Marks))
	copy(marks, s.Marks)
	row := append([]bool(nil), s.Marks[y]...)
	row[x] = value
	marks[y] = row

	s.Marks = marks
	return s
}

// Turn returns a state where actor faces o.
func (s State) Turn(actor Actor, o core.Orientation) State {
	moved := actor
	moved.Orientation = o
	return s.replace(actor, moved)
}

// Relocate returns a state where actor's top-left corner is at target.
func (s State) Relocate(actor Actor, target core.Point) State {
	moved := actor
	moved.Position = actor.Position.MoveTo(target)
	return s.replace(actor, moved)
}

// replace swaps the first actor equal to old for updated, keeping order.
func (s State) replace(old, updated Actor) State {
	for i, a := range s.Actors {
		if a == old {
			actors := append([]Actor(nil), s.Actors...)
			actors[i] = updated
			s.Actors = actors
			return s
		}
	}
	return s
}

// Stuff is everything found on one tile.
type Stuff struct {
	Actors    []Actor
	Furniture Tile
	Mark      bool
}

// StuffAt collects the actors, furniture and mark on tile p.
// It returns false when p lies outside the terrain.
func (s State) StuffAt(p core.Point) (Stuff, bool) {
	if p.Y < 0 || p.X < 0 || p.Y >= s.Terrain.Height() || p.X >= s.Terrain.Width() {
		return Stuff{}, false
	}

	var stuff Stuff
	for _, a := range s.Actors {
		if a.Covers(p) {
			stuff.Actors = append(stuff.Actors, a)
		}
	}
	// Short rows read as Nothing.
	stuff.Furniture, _ = s.Terrain.At(p.X, p.Y)
	stuff.Mark = s.Mark(p.X, p.Y)
	return stuff, true
}

// Victory reports whether the hero overlaps any other actor.
func Victory(s State) bool {
	hero, ok := s.Hero()
	if !ok {
		return false
	}
	for _, a := range s.Actors {
		if a.Kind == Hero {
			continue
		}
		if hero.Position.Intersects(a.Position) {
			return true
		}
	}
	return false
}
