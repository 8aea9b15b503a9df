package maze

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/robojobs/internal/core"
	"github.com/vovakirdan/robojobs/internal/level"
)

// Default sizes: a map of 6x6 rooms, each 12 tiles wide and 10 tall.
const (
	DefaultWidth      = 6
	DefaultHeight     = 6
	DefaultRoomWidth  = 12
	DefaultRoomHeight = 10

	// MinRoomSize is the smallest room the door template fits in.
	MinRoomSize = 6
)

// ErrNoSampler is returned when Params carries no random source.
var ErrNoSampler = errors.New("maze: no sampler")

// Params configures Generate. Width and Height are counted in rooms.
type Params struct {
	Width, Height         int
	RoomWidth, RoomHeight int
	Sampler               Sampler
}

// DefaultParams returns the standard map size with the given sampler.
func DefaultParams(sampler Sampler) Params {
	return Params{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		RoomWidth:  DefaultRoomWidth,
		RoomHeight: DefaultRoomHeight,
		Sampler:    sampler,
	}
}

// Validate reports the first unusable parameter.
func (p Params) Validate() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("maze: map size %dx%d must be at least 1x1", p.Width, p.Height)
	}
	if p.Width*p.Height < 2 {
		return fmt.Errorf("maze: map size %dx%d needs at least two rooms", p.Width, p.Height)
	}
	if p.RoomWidth < MinRoomSize || p.RoomHeight < MinRoomSize {
		return fmt.Errorf("maze: room size %dx%d must be at least %dx%d",
			p.RoomWidth, p.RoomHeight, MinRoomSize, MinRoomSize)
	}
	if p.Sampler == nil {
		return ErrNoSampler
	}
	return nil
}

// Level is a generated map with the rooms and points the hero and goal use.
type Level struct {
	Terrain  level.Terrain
	Entrance core.Point
	Exit     core.Point
	Start    int
	End      int
	Doors    [][]int
}

// Generate picks two distinct rooms, carves a maze between them and stamps
// the room blocks. Rooms the carve never touched stay void.
func Generate(p Params) (Level, error) {
	if err := p.Validate(); err != nil {
		return Level{}, err
	}

	rooms := p.Width * p.Height
	graph := RoomGraph(p.Width, p.Height)

	start := p.Sampler.Intn(rooms)
	end := p.Sampler.Intn(rooms)
	for end == start {
		end = p.Sampler.Intn(rooms)
	}

	doors := Carve(start, end, graph, p.Sampler)

	terrain := level.NewTerrain(p.Width*p.RoomWidth, p.Height*p.RoomHeight)
	terrain.Foreground = level.NewTerrain(p.Width*p.RoomWidth, p.Height*p.RoomHeight).Furniture

	blocks := blocksFor(p.RoomWidth, p.RoomHeight)
	for room, links := range doors {
		if len(links) == 0 && room != start {
			continue
		}
		block := blocks[doorMask(room, links, p.Width)]
		stamp(terrain, block, p.roomOrigin(room))
	}

	return Level{
		Terrain:  terrain,
		Entrance: p.roomOrigin(start).Add(core.Pt(p.RoomWidth/2-1, p.RoomHeight/2-1)),
		Exit:     p.roomOrigin(end).Add(core.Pt(3, 3)),
		Start:    start,
		End:      end,
		Doors:    doors,
	}, nil
}

func (p Params) roomOrigin(room int) core.Point {
	return core.Pt((room%p.Width)*p.RoomWidth, (room/p.Width)*p.RoomHeight)
}

// doorMask derives the open sides of room from the rooms it links to.
func doorMask(room int, links []int, width int) Doors {
	rx, ry := room%width, room/width
	var mask Doors
	for _, out := range links {
		ox, oy := out%width, out/width
		switch {
		case oy-ry == -1:
			mask |= DoorNorth
		case ox-rx == 1:
			mask |= DoorEast
		case oy-ry == 1:
			mask |= DoorSouth
		case ox-rx == -1:
			mask |= DoorWest
		}
	}
	return mask
}

func stamp(terrain level.Terrain, block Block, origin core.Point) {
	for y, row := range block.Furniture {
		copy(terrain.Furniture[origin.Y+y][origin.X:], row)
		copy(terrain.Foreground[origin.Y+y][origin.X:], block.Foreground[y])
	}
}

// NewLevelState places the hero facing east on the entrance and the heart
// facing south on the exit.
func NewLevelState(l Level) level.State {
	return level.NewState(l.Terrain,
		level.NewActor(level.Hero, l.Entrance, core.East),
		level.NewActor(level.Heart, l.Exit, core.South),
	)
}
