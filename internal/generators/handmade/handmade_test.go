package handmade

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/robojobs/internal/core"
	"github.com/vovakirdan/robojobs/internal/level"
	"github.com/vovakirdan/robojobs/internal/registry"
)

const corridor = `id: corridor
name: The Corridor
legend:
  "+": eastDoorway
rows:
  - "#####"
  - "#..+#"
  - "#####"
actors:
  - kind: hero
    x: 1
    y: 1
  - kind: heart
    x: 3
    y: 1
    facing: west
`

func TestParseYAML(t *testing.T) {
	lvl, err := ParseYAML([]byte(corridor))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if lvl.ID != "corridor" || lvl.Name != "The Corridor" {
		t.Errorf("ID, Name = %q, %q, expected corridor, The Corridor", lvl.ID, lvl.Name)
	}
	if tile, _ := lvl.State.Terrain.At(3, 1); tile != level.EastDoorway {
		t.Errorf("At(3,1) = %v, expected %v", tile, level.EastDoorway)
	}
	hero, ok := lvl.State.Hero()
	if !ok {
		t.Fatal("no hero")
	}
	if !hero.Covers(core.Pt(1, 1)) || hero.Orientation != core.East {
		t.Errorf("hero = %+v, expected (1,1) facing east", hero)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "no hero",
			yaml: "id: a\nrows: [\"#.#\"]\nactors: []\n",
			want: ErrNoHero,
		},
		{
			name: "two heroes",
			yaml: "id: a\nrows: [\"..\"]\nactors: [{kind: hero, x: 0, y: 0}, {kind: hero, x: 1, y: 0}]\n",
			want: ErrNoHero,
		},
		{
			name: "hero in a wall",
			yaml: "id: a\nrows: [\"#.\"]\nactors: [{kind: hero, x: 0, y: 0}]\n",
			want: ErrBadActor,
		},
		{
			name: "unknown character",
			yaml: "id: a\nrows: [\".?\"]\nactors: [{kind: hero, x: 0, y: 0}]\n",
		},
		{
			name: "unknown kind",
			yaml: "id: a\nrows: [\".\"]\nactors: [{kind: dragon, x: 0, y: 0}]\n",
		},
		{
			name: "missing id",
			yaml: "rows: [\".\"]\nactors: [{kind: hero, x: 0, y: 0}]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("err = %v, expected %v", err, tt.want)
			}
		})
	}
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b.yaml":         corridor,
		"sub/a.yml":      "id: alpha\nrows: [\"..\"]\nactors: [{kind: hero, x: 0, y: 0}]\n",
		"notes.txt":      "ignored",
		"sub/broken.yml": "id: broken\nrows: []\n",
	}
	for name, body := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	levels, err := NewLoader(dir).LoadAll()
	if err == nil {
		t.Error("expected the broken file to be reported")
	}
	if len(levels) != 2 {
		t.Fatalf("len(levels) = %d, expected 2", len(levels))
	}
	if levels[0].ID != "alpha" || levels[1].ID != "corridor" {
		t.Errorf("IDs = %s, %s, expected alpha, corridor", levels[0].ID, levels[1].ID)
	}
}

func TestRegisterAll(t *testing.T) {
	dir := t.TempDir()
	body := "id: handmade-test-room\nname: Room\nrows: [\"...\"]\nactors: [{kind: hero, x: 1, y: 0}]\n"
	if err := os.WriteFile(filepath.Join(dir, "room.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	ids, err := RegisterAll(dir)
	if err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}
	if len(ids) != 1 || ids[0] != "handmade-test-room" {
		t.Fatalf("ids = %v, expected [handmade-test-room]", ids)
	}

	state, err := registry.Generate("handmade-test-room", registry.Options{Seed: 7})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if state.Terrain.Width() != 3 {
		t.Errorf("Width = %d, expected 3", state.Terrain.Width())
	}

	// A second load collides with the registered ID.
	ids, err = RegisterAll(dir)
	if err == nil || len(ids) != 0 {
		t.Errorf("second RegisterAll = %v, %v, expected a collision error", ids, err)
	}
}
