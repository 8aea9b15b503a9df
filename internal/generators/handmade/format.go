package handmade

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/robojobs/internal/core"
	"github.com/vovakirdan/robojobs/internal/level"
)

// DefaultLegend maps map characters to tiles when a file does not override
// them.
var DefaultLegend = map[string]string{
	" ": "nothing",
	".": "floor",
	"#": "surroundedWall",
}

var (
	ErrNoHero   = errors.New("level needs exactly one hero")
	ErrBadActor = errors.New("actor must stand on a passable tile")
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID     string            `yaml:"id"`
	Name   string            `yaml:"name"`
	Legend map[string]string `yaml:"legend,omitempty"`
	Rows   []string          `yaml:"rows"`
	Actors []YAMLActor       `yaml:"actors"`
}

// YAMLActor places one character.
type YAMLActor struct {
	Kind   string `yaml:"kind"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Facing string `yaml:"facing,omitempty"` // default east
}

// Level is a parsed level file.
type Level struct {
	ID       string
	Name     string
	State    level.State
	FilePath string
}

// ParseYAML parses a level file and checks that it is playable.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, errors.New("level id is empty")
	}
	if len(yl.Rows) == 0 {
		return Level{}, errors.New("level has no rows")
	}

	legend := make(map[rune]level.Tile, len(DefaultLegend)+len(yl.Legend))
	for _, src := range []map[string]string{DefaultLegend, yl.Legend} {
		for ch, name := range src {
			r := []rune(ch)
			if len(r) != 1 {
				return Level{}, fmt.Errorf("legend key %q is not one character", ch)
			}
			tile, err := level.ParseTile(name)
			if err != nil {
				return Level{}, err
			}
			legend[r[0]] = tile
		}
	}

	terrain := level.Terrain{Furniture: make([][]level.Tile, len(yl.Rows))}
	for y, row := range yl.Rows {
		for x, ch := range []rune(row) {
			tile, ok := legend[ch]
			if !ok {
				return Level{}, fmt.Errorf("row %d column %d: %q is not in the legend", y+1, x+1, ch)
			}
			terrain.Furniture[y] = append(terrain.Furniture[y], tile)
		}
	}

	actors := make([]level.Actor, 0, len(yl.Actors))
	heroes := 0
	for _, a := range yl.Actors {
		kind, err := level.ParseCharacterType(a.Kind)
		if err != nil {
			return Level{}, err
		}
		facing := core.East
		if a.Facing != "" {
			if facing, err = core.ParseOrientation(a.Facing); err != nil {
				return Level{}, err
			}
		}
		if !terrain.InBounds(a.X, a.Y) {
			return Level{}, fmt.Errorf("%s at (%d,%d): %w", kind, a.X, a.Y, ErrBadActor)
		}
		if kind == level.Hero {
			heroes++
		}
		actors = append(actors, level.NewActor(kind, core.Pt(a.X, a.Y), facing))
	}
	if heroes != 1 {
		return Level{}, ErrNoHero
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}
	return Level{ID: yl.ID, Name: name, State: level.NewState(terrain, actors...)}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
