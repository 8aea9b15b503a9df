package level

import (
	"testing"

	"github.com/vovakirdan/robojobs/internal/core"
)

func TestSimpleLevel(t *testing.T) {
	s := Simple()

	if s.Terrain.Width() != 5 || s.Terrain.Height() != 5 {
		t.Fatalf("Simple() terrain = %dx%d, expected 5x5", s.Terrain.Width(), s.Terrain.Height())
	}
	hero, ok := s.Hero()
	if !ok {
		t.Fatal("Simple() has no hero")
	}
	if hero.Position.Origin() != core.Pt(2, 2) || hero.Orientation != core.East {
		t.Errorf("hero = %+v, expected at (2,2) facing east", hero)
	}
	if Victory(s) {
		t.Error("Victory(Simple()) = true, expected false")
	}
}

func TestSetAndEraseMark(t *testing.T) {
	s := Simple()

	marked := s.SetMark(1, 1)
	if !marked.Mark(1, 1) {
		t.Error("SetMark(1, 1) did not set the mark")
	}
	if s.Mark(1, 1) {
		t.Error("SetMark mutated the receiver")
	}

	again := marked.SetMark(1, 1)
	if &again.Marks[0] != &marked.Marks[0] {
		t.Error("SetMark on an existing mark should return the same state")
	}

	erased := marked.EraseMark(1, 1)
	if erased.Mark(1, 1) {
		t.Error("EraseMark(1, 1) did not clear the mark")
	}
	if !marked.Mark(1, 1) {
		t.Error("EraseMark mutated the receiver")
	}

	unchanged := s.EraseMark(3, 3)
	if &unchanged.Marks[0] != &s.Marks[0] {
		t.Error("EraseMark without a mark should return the same state")
	}
}

func TestTurnAndRelocate(t *testing.T) {
	s := Simple()
	hero, _ := s.Hero()

	turned := s.Turn(hero, core.North)
	got, _ := turned.Hero()
	if got.Orientation != core.North {
		t.Errorf("Turn() orientation = %v, expected north", got.Orientation)
	}
	if turned.Actors[0].Kind != Hero {
		t.Error("Turn() should keep actor order")
	}
	if orig, _ := s.Hero(); orig.Orientation != core.East {
		t.Error("Turn() mutated the receiver")
	}

	moved := s.Relocate(hero, core.Pt(3, 2))
	got, _ = moved.Hero()
	if got.Position != core.NewRect(3, 2, 1, 1) {
		t.Errorf("Relocate() position = %+v, expected {3 2 1 1}", got.Position)
	}
	if len(moved.Actors) != len(s.Actors) {
		t.Errorf("Relocate() changed actor count to %d", len(moved.Actors))
	}
}

func TestStuffAt(t *testing.T) {
	s := Simple().SetMark(3, 3)

	tests := []struct {
		name      string
		p         core.Point
		ok        bool
		furniture Tile
		actors    int
		mark      bool
	}{
		{"hero tile", core.Pt(2, 2), true, Floor, 1, false},
		{"heart tile", core.Pt(2, 1), true, Floor, 1, false},
		{"wall", core.Pt(4, 2), true, EastWall, 0, false},
		{"mark", core.Pt(3, 3), true, Floor, 0, true},
		{"corner void", core.Pt(0, 0), true, Nothing, 0, false},
		{"outside", core.Pt(5, 2), false, Nothing, 0, false},
		{"negative", core.Pt(-1, 0), false, Nothing, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stuff, ok := s.StuffAt(tc.p)
			if ok != tc.ok {
				t.Fatalf("StuffAt(%v) ok = %v, expected %v", tc.p, ok, tc.ok)
			}
			if !ok {
				return
			}
			if stuff.Furniture != tc.furniture {
				t.Errorf("Furniture = %v, expected %v", stuff.Furniture, tc.furniture)
			}
			if len(stuff.Actors) != tc.actors {
				t.Errorf("len(Actors) = %d, expected %d", len(stuff.Actors), tc.actors)
			}
			if stuff.Mark != tc.mark {
				t.Errorf("Mark = %v, expected %v", stuff.Mark, tc.mark)
			}
		})
	}
}

func TestVictory(t *testing.T) {
	s := Simple()
	hero, _ := s.Hero()

	if !Victory(s.Relocate(hero, core.Pt(2, 1))) {
		t.Error("hero on the heart should be a victory")
	}

	goblin := NewState(s.Terrain,
		NewActor(Hero, core.Pt(1, 1), core.East),
		NewActor(Goblin, core.Pt(1, 1), core.West),
	)
	if !Victory(goblin) {
		t.Error("hero overlapping any other actor should be a victory")
	}

	if Victory(NewState(s.Terrain)) {
		t.Error("Victory() without a hero should be false")
	}
}

func TestPassable(t *testing.T) {
	passable := map[Tile]bool{
		Floor:        true,
		NorthDoorway: true,
		EastDoorway:  true,
		SouthDoorway: true,
		WestDoorway:  true,
	}
	for _, tile := range Tiles() {
		if Passable(tile) != passable[tile] {
			t.Errorf("Passable(%v) = %v, expected %v", tile, Passable(tile), passable[tile])
		}
	}
}

func TestParseTile(t *testing.T) {
	for _, tile := range Tiles() {
		got, err := ParseTile(tile.String())
		if err != nil {
			t.Fatalf("ParseTile(%q) failed: %v", tile.String(), err)
		}
		if got != tile {
			t.Errorf("ParseTile(%q) = %v, expected %v", tile.String(), got, tile)
		}
	}
	if _, err := ParseTile("lava"); err == nil {
		t.Error("ParseTile(\"lava\") should fail")
	}
}
