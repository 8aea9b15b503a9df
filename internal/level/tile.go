// Package level holds the terrain grid, the level state the robot acts upon,
// and the pure transforms that move the game forward.
package level

import (
	"fmt"

	"github.com/vovakirdan/robojobs/internal/core"
)

// Tile is one terrain cell kind.
type Tile int

const (
	Nothing Tile = iota
	Floor
	SurroundedWall

	NorthwestCornerWall
	NortheastCornerWall
	SouthwestCornerWall
	SoutheastCornerWall

	NorthWall
	EastWall
	SouthWall
	WestWall

	NorthDoorway
	EastDoorway
	SouthDoorway
	WestDoorway

	NorthDoorWest
	NorthDoorEast
	SouthDoorWest
	SouthDoorEast
	EastDoorNorth
	EastDoorSouth
	WestDoorNorth
	WestDoorSouth

	NorthDoorframeWest
	NorthDoorframeEast
	SouthDoorframeWest
	SouthDoorframeEast
	EastDoorframeNorth
	EastDoorframeSouth
	WestDoorframeNorth
	WestDoorframeSouth

	NorthwestPointWall
	NortheastPointWall
	SouthwestPointWall
	SoutheastPointWall

	tileCount
)

var tileNames = [tileCount]string{
	Nothing:             "nothing",
	Floor:               "floor",
	SurroundedWall:      "surroundedWall",
	NorthwestCornerWall: "northwestCornerWall",
	NortheastCornerWall: "northeastCornerWall",
	SouthwestCornerWall: "southwestCornerWall",
	SoutheastCornerWall: "southeastCornerWall",
	NorthWall:           "northWall",
	EastWall:            "eastWall",
	SouthWall:           "southWall",
	WestWall:            "westWall",
	NorthDoorway:        "northDoorway",
	EastDoorway:         "eastDoorway",
	SouthDoorway:        "southDoorway",
	WestDoorway:         "westDoorway",
	NorthDoorWest:       "northDoorWest",
	NorthDoorEast:       "northDoorEast",
	SouthDoorWest:       "southDoorWest",
	SouthDoorEast:       "southDoorEast",
	EastDoorNorth:       "eastDoorNorth",
	EastDoorSouth:       "eastDoorSouth",
	WestDoorNorth:       "westDoorNorth",
	WestDoorSouth:       "westDoorSouth",
	NorthDoorframeWest:  "northDoorframeWest",
	NorthDoorframeEast:  "northDoorframeEast",
	SouthDoorframeWest:  "southDoorframeWest",
	SouthDoorframeEast:  "southDoorframeEast",
	EastDoorframeNorth:  "eastDoorframeNorth",
	EastDoorframeSouth:  "eastDoorframeSouth",
	WestDoorframeNorth:  "westDoorframeNorth",
	WestDoorframeSouth:  "westDoorframeSouth",
	NorthwestPointWall:  "northwestPointWall",
	NortheastPointWall:  "northeastPointWall",
	SouthwestPointWall:  "southwestPointWall",
	SoutheastPointWall:  "southeastPointWall",
}

// Tiles returns every tile kind in declaration order.
func Tiles() []Tile {
	out := make([]Tile, 0, tileCount)
	for t := Nothing; t < tileCount; t++ {
		out = append(out, t)
	}
	return out
}

func (t Tile) String() string {
	if t < 0 || t >= tileCount {
		return fmt.Sprintf("Tile(%d)", int(t))
	}
	return tileNames[t]
}

// ParseTile converts a tile name back to a Tile.
func ParseTile(s string) (Tile, error) {
	for t, name := range tileNames {
		if name == s {
			return Tile(t), nil
		}
	}
	return Nothing, fmt.Errorf("level: unknown tile %q", s)
}

// Passable reports whether an actor may stand on the tile.
// Only floor and the four doorways are.
func Passable(t Tile) bool {
	switch t {
	case Floor, NorthDoorway, EastDoorway, SouthDoorway, WestDoorway:
		return true
	default:
		return false
	}
}

// Glyph returns the rune and palette entry used to draw a tile.
func (t Tile) Glyph() (rune, core.Color) {
	switch t {
	case Nothing:
		return ' ', core.ColorVoid
	case Floor:
		return '·', core.ColorFloor
	case SurroundedWall:
		return '█', core.ColorWall
	case NorthwestCornerWall:
		return '┌', core.ColorWall
	case NortheastCornerWall:
		return '┐', core.ColorWall
	case SouthwestCornerWall:
		return '└', core.ColorWall
	case SoutheastCornerWall:
		return '┘', core.ColorWall
	case NorthWall, SouthWall:
		return '─', core.ColorWall
	case EastWall, WestWall:
		return '│', core.ColorWall
	case NorthDoorway, SouthDoorway, EastDoorway, WestDoorway:
		return '·', core.ColorDoor
	case NorthDoorWest, SouthDoorWest, EastDoorNorth, WestDoorNorth,
		NorthDoorEast, SouthDoorEast, EastDoorSouth, WestDoorSouth:
		return '▪', core.ColorWall
	case NorthDoorframeWest, SouthDoorframeWest:
		return '╡', core.ColorFrame
	case NorthDoorframeEast, SouthDoorframeEast:
		return '╞', core.ColorFrame
	case EastDoorframeNorth, WestDoorframeNorth:
		return '╨', core.ColorFrame
	case EastDoorframeSouth, WestDoorframeSouth:
		return '╥', core.ColorFrame
	case NorthwestPointWall, NortheastPointWall, SouthwestPointWall, SoutheastPointWall:
		return '•', core.ColorWall
	default:
		return '?', core.ColorError
	}
}
