package level

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/robojobs/internal/core"
)

// Terrain is the static tile grid of a level, indexed [row y][column x].
// Foreground is an optional overlay of the same shape drawn above actors;
// Nothing cells in it are transparent.
type Terrain struct {
	Furniture  [][]Tile
	Foreground [][]Tile
}

// NewTerrain allocates a terrain of the given size filled with Nothing.
func NewTerrain(width, height int) Terrain {
	return Terrain{Furniture: grid(width, height)}
}

func grid(width, height int) [][]Tile {
	rows := make([][]Tile, height)
	for y := range rows {
		rows[y] = make([]Tile, width)
	}
	return rows
}

// Height returns the number of rows.
func (t Terrain) Height() int {
	return len(t.Furniture)
}

// Width returns the length of the longest row.
func (t Terrain) Width() int {
	w := 0
	for _, row := range t.Furniture {
		w = core.Max(w, len(row))
	}
	return w
}

// At returns the furniture tile at (x, y), or false when outside the grid.
func (t Terrain) At(x, y int) (Tile, bool) {
	if y < 0 || y >= len(t.Furniture) || x < 0 || x >= len(t.Furniture[y]) {
		return Nothing, false
	}
	return t.Furniture[y][x], true
}

// Overlay returns the foreground tile at (x, y); Nothing when absent.
func (t Terrain) Overlay(x, y int) Tile {
	if y < 0 || y >= len(t.Foreground) || x < 0 || x >= len(t.Foreground[y]) {
		return Nothing
	}
	return t.Foreground[y][x]
}

// InBounds reports whether (x, y) is inside the grid and passable.
func (t Terrain) InBounds(x, y int) bool {
	tile, ok := t.At(x, y)
	return ok && Passable(tile)
}

// Reachable reports whether a 4-connected walk over passable tiles leads from
// one point to the other.
func (t Terrain) Reachable(from, to core.Point) bool {
	if !t.InBounds(from.X, from.Y) || !t.InBounds(to.X, to.Y) {
		return false
	}

	visited := mapset.New[core.Point]()
	queue := []core.Point{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == to {
			return true
		}
		if visited.Has(current) {
			continue
		}
		visited.Put(current)

		for _, o := range core.Orientations() {
			n := current.Add(o.Delta())
			if t.InBounds(n.X, n.Y) && !visited.Has(n) {
				queue = append(queue, n)
			}
		}
	}

	return false
}

// Count returns how many furniture cells hold a tile other than Nothing.
func (t Terrain) Count() int {
	n := 0
	for _, row := range t.Furniture {
		for _, tile := range row {
			if tile != Nothing {
				n++
			}
		}
	}
	return n
}
