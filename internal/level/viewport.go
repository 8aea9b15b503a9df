package level

import "github.com/vovakirdan/robojobs/internal/core"

// Viewport is the window of terrain shown on screen, in tile units.
type Viewport struct {
	Top, Left     int
	Width, Height int
}

// NewViewport centres a width x height window on the hero and clamps it so it
// never extends past the terrain. Terrain smaller than the window is anchored
// at the top-left corner.
func NewViewport(s State, width, height int) Viewport {
	v := Viewport{Width: width, Height: height}

	hero, ok := s.Hero()
	if !ok {
		return v
	}
	cx, cy := hero.Position.Center()

	rows, cols := s.Terrain.Height(), s.Terrain.Width()
	v.Top = core.Clamp(cy-height/2, 0, core.Max(0, rows-height))
	v.Left = core.Clamp(cx-width/2, 0, core.Max(0, cols-width))
	return v
}

// Contains reports whether tile p is visible.
func (v Viewport) Contains(p core.Point) bool {
	return core.NewRect(v.Left, v.Top, v.Width, v.Height).Contains(p.X, p.Y)
}

// Draw renders the visible part of the level into screen with the viewport's
// top-left tile at origin. Layers are terrain, marks, actors, then foreground.
func Draw(screen *core.Screen, s State, v Viewport, origin core.Point) {
	for dy := 0; dy < v.Height; dy++ {
		for dx := 0; dx < v.Width; dx++ {
			x, y := v.Left+dx, v.Top+dy
			tile, _ := s.Terrain.At(x, y)
			r, c := tile.Glyph()
			if s.Mark(x, y) {
				r, c = '×', core.ColorMark
			}
			screen.SetColored(origin.X+dx, origin.Y+dy, r, c)
		}
	}

	for _, a := range s.Actors {
		r, c := a.Kind.Glyph()
		for y := a.Position.Y; y < a.Position.Bottom(); y++ {
			for x := a.Position.X; x < a.Position.Right(); x++ {
				p := core.Pt(x, y)
				if !v.Contains(p) {
					continue
				}
				screen.SetColored(origin.X+x-v.Left, origin.Y+y-v.Top, r, c)
			}
		}
	}

	for dy := 0; dy < v.Height; dy++ {
		for dx := 0; dx < v.Width; dx++ {
			tile := s.Terrain.Overlay(v.Left+dx, v.Top+dy)
			if tile == Nothing {
				continue
			}
			r, c := tile.Glyph()
			screen.SetColored(origin.X+dx, origin.Y+dy, r, c)
		}
	}
}

// Framed draws the whole level inside a one-tile box.
func Framed(s State) *core.Screen {
	w, h := s.Terrain.Width(), s.Terrain.Height()
	screen := core.NewScreen(w+2, h+2)
	screen.DrawBox(core.NewRect(0, 0, w+2, h+2), core.ColorHint)
	Draw(screen, s, Viewport{Width: w, Height: h}, core.Pt(1, 1))
	return screen
}

// Render draws the whole level as plain text, one row per line.
func Render(s State) string {
	v := Viewport{Width: s.Terrain.Width(), Height: s.Terrain.Height()}
	screen := core.NewScreen(v.Width, v.Height)
	Draw(screen, s, v, core.Point{})
	return screen.String()
}
