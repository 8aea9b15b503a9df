package maze

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/robojobs/internal/level"
)

// pick always chooses the same end of the candidate list.
type pick struct{ last bool }

func (p pick) Intn(n int) int {
	if p.last {
		return n - 1
	}
	return 0
}

func TestRoomGraph(t *testing.T) {
	got := RoomGraph(3, 2)
	expected := [][]int{
		{1, 3},
		{0, 2, 4},
		{1, 5},
		{0, 4},
		{1, 3, 5},
		{2, 4},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("RoomGraph(3, 2) = %v, expected %v", got, expected)
	}
}

func TestCarve(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		start, end int
		sampler    Sampler
		expected   [][]int
	}{
		{
			name:  "two rooms",
			width: 2, height: 1,
			start: 0, end: 1,
			sampler:  pick{},
			expected: [][]int{{1}, {0}},
		},
		{
			name:  "backs out of a dead end",
			width: 3, height: 1,
			start: 1, end: 2,
			sampler:  pick{},
			expected: [][]int{{1}, {0, 2}, {1}},
		},
		{
			name:  "stops on reaching end",
			width: 2, height: 2,
			start: 0, end: 1,
			sampler:  pick{last: true},
			expected: [][]int{{2}, {3}, {0, 3}, {1, 2}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Carve(tc.start, tc.end, RoomGraph(tc.width, tc.height), tc.sampler)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Carve() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCarveSubgraph(t *testing.T) {
	graph := RoomGraph(6, 6)
	rng := rand.New(rand.NewSource(7))
	carved := Carve(0, 35, graph, rng)

	for from, links := range carved {
		for _, to := range links {
			found := false
			for _, g := range graph[from] {
				found = found || g == to
			}
			if !found {
				t.Errorf("carved edge %d-%d is not in the room graph", from, to)
			}
		}
	}
}

func TestRoomArt(t *testing.T) {
	expected := []string{
		"a---1NN2---b",
		"[..........]",
		"[..........]",
		"7..........5",
		"W..........E",
		"W..........E",
		"8..........6",
		"[..........]",
		"[..........]",
		"c___3SS4___d",
	}
	got := roomArt(DefaultRoomWidth, DefaultRoomHeight)
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("roomArt(12, 10) =\n%s\nexpected\n%s", strings.Join(got, "\n"), strings.Join(expected, "\n"))
	}
}

func TestBlockTable(t *testing.T) {
	table := NewBlockTable(DefaultRoomWidth, DefaultRoomHeight)

	closed := table[0]
	for x := 0; x < DefaultRoomWidth; x++ {
		if level.Passable(closed.Furniture[0][x]) || level.Passable(closed.Furniture[DefaultRoomHeight-1][x]) {
			t.Errorf("closed room has a passable tile on its north or south edge at x=%d", x)
		}
	}

	open := table[DoorNorth|DoorEast|DoorSouth|DoorWest]
	tests := []struct {
		name       string
		x, y       int
		furniture  level.Tile
		foreground level.Tile
	}{
		{"north door", 5, 0, level.NorthDoorway, level.Nothing},
		{"north jamb", 4, 0, level.NorthDoorWest, level.NorthDoorframeWest},
		{"east door", 11, 4, level.EastDoorway, level.Nothing},
		{"east jamb", 11, 6, level.EastDoorSouth, level.EastDoorframeSouth},
		{"south door", 6, 9, level.SouthDoorway, level.Nothing},
		{"west jamb", 0, 3, level.WestDoorNorth, level.WestDoorframeNorth},
		{"corner", 0, 0, level.NorthwestCornerWall, level.Nothing},
		{"floor", 5, 5, level.Floor, level.Nothing},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := open.Furniture[tc.y][tc.x]; got != tc.furniture {
				t.Errorf("Furniture[%d][%d] = %v, expected %v", tc.y, tc.x, got, tc.furniture)
			}
			if got := open.Foreground[tc.y][tc.x]; got != tc.foreground {
				t.Errorf("Foreground[%d][%d] = %v, expected %v", tc.y, tc.x, got, tc.foreground)
			}
		})
	}

	eastOnly := table[DoorEast]
	if eastOnly.Furniture[0][5] != level.NorthWall {
		t.Errorf("east-only room north door cell = %v, expected northWall", eastOnly.Furniture[0][5])
	}
	if eastOnly.Furniture[4][11] != level.EastDoorway {
		t.Errorf("east-only room east door cell = %v, expected eastDoorway", eastOnly.Furniture[4][11])
	}
}

func TestGenerateConnected(t *testing.T) {
	sizes := []struct {
		name                  string
		width, height         int
		roomWidth, roomHeight int
	}{
		{"default", DefaultWidth, DefaultHeight, DefaultRoomWidth, DefaultRoomHeight},
		{"two by two", 2, 2, DefaultRoomWidth, DefaultRoomHeight},
		{"corridor", 5, 1, 8, 6},
		{"small rooms", 4, 3, 6, 6},
	}

	for _, size := range sizes {
		t.Run(size.name, func(t *testing.T) {
			for seed := int64(1); seed <= 20; seed++ {
				lvl, err := Generate(Params{
					Width:      size.width,
					Height:     size.height,
					RoomWidth:  size.roomWidth,
					RoomHeight: size.roomHeight,
					Sampler:    rand.New(rand.NewSource(seed)),
				})
				if err != nil {
					t.Fatalf("Generate() failed: %v", err)
				}
				if lvl.Start == lvl.End {
					t.Fatalf("seed %d: start and end are both room %d", seed, lvl.Start)
				}
				if lvl.Terrain.Width() != size.width*size.roomWidth || lvl.Terrain.Height() != size.height*size.roomHeight {
					t.Fatalf("seed %d: terrain is %dx%d", seed, lvl.Terrain.Width(), lvl.Terrain.Height())
				}
				if !lvl.Terrain.Reachable(lvl.Entrance, lvl.Exit) {
					t.Errorf("seed %d: exit %v not reachable from entrance %v\n%s",
						seed, lvl.Exit, lvl.Entrance, level.Render(NewLevelState(lvl)))
				}
			}
		})
	}
}

func TestGenerateLeavesUntouchedRoomsVoid(t *testing.T) {
	lvl, err := Generate(DefaultParams(rand.New(rand.NewSource(3))))
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	for room, links := range lvl.Doors {
		if len(links) > 0 || room == lvl.Start {
			continue
		}
		ox := (room % DefaultWidth) * DefaultRoomWidth
		oy := (room / DefaultWidth) * DefaultRoomHeight
		for y := oy; y < oy+DefaultRoomHeight; y++ {
			for x := ox; x < ox+DefaultRoomWidth; x++ {
				if tile, _ := lvl.Terrain.At(x, y); tile != level.Nothing {
					t.Fatalf("unvisited room %d has %v at (%d, %d)", room, tile, x, y)
				}
			}
		}
	}
}

func TestGenerateEntranceAndExit(t *testing.T) {
	lvl, err := Generate(DefaultParams(rand.New(rand.NewSource(11))))
	if err != nil {
		t.Fatalf("Generate() failed: %v", err)
	}

	sx := (lvl.Start % DefaultWidth) * DefaultRoomWidth
	sy := (lvl.Start / DefaultWidth) * DefaultRoomHeight
	if lvl.Entrance.X != sx+5 || lvl.Entrance.Y != sy+4 {
		t.Errorf("Entrance = %v, expected start room origin + (5,4)", lvl.Entrance)
	}
	ex := (lvl.End % DefaultWidth) * DefaultRoomWidth
	ey := (lvl.End / DefaultWidth) * DefaultRoomHeight
	if lvl.Exit.X != ex+3 || lvl.Exit.Y != ey+3 {
		t.Errorf("Exit = %v, expected end room origin + (3,3)", lvl.Exit)
	}

	state := NewLevelState(lvl)
	hero, ok := state.Hero()
	if !ok || hero.Position.Origin() != lvl.Entrance {
		t.Errorf("hero = %+v, expected at entrance %v", hero, lvl.Entrance)
	}
	if level.Victory(state) {
		t.Error("a new level should not start in victory")
	}
}

func TestParamsValidate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tests := []struct {
		name  string
		p     Params
		valid bool
	}{
		{"default", DefaultParams(rng), true},
		{"single room", Params{Width: 1, Height: 1, RoomWidth: 12, RoomHeight: 10, Sampler: rng}, false},
		{"zero width", Params{Width: 0, Height: 3, RoomWidth: 12, RoomHeight: 10, Sampler: rng}, false},
		{"tiny rooms", Params{Width: 2, Height: 2, RoomWidth: 5, RoomHeight: 10, Sampler: rng}, false},
		{"no sampler", Params{Width: 2, Height: 2, RoomWidth: 12, RoomHeight: 10}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate()
			if (err == nil) != tc.valid {
				t.Errorf("Validate() = %v, expected valid %v", err, tc.valid)
			}
		})
	}
}
