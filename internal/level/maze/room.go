package maze

import (
	"strings"

	"github.com/vovakirdan/robojobs/internal/level"
)

// Doors is a bit mask of the open sides of a room.
type Doors uint8

const (
	DoorNorth Doors = 1 << iota
	DoorEast
	DoorSouth
	DoorWest
)

// Has reports whether every side in d is open.
func (doors Doors) Has(d Doors) bool {
	return doors&d == d
}

// Block is the tile pattern stamped for one room.
type Block struct {
	Furniture  [][]level.Tile
	Foreground [][]level.Tile
}

// BlockTable holds the 16 door configurations for one room size.
type BlockTable [16]Block

// roomArt draws the room template for a width x height room.
//
//	a---1NN2---b   a b c d  corners
//	[..........]   - _ [ ]  straight walls
//	7..........5   N E S W  door cells
//	W..........E   1 2 3 4  north and south jambs
//	W..........E   5 6 7 8  east and west jambs
//	8..........6   .        floor
//	c___3SS4___d
func roomArt(width, height int) []string {
	side := func(i, n int, wall, door, before, after byte) byte {
		switch i {
		case n/2 - 1, n / 2:
			return door
		case n/2 - 2:
			return before
		case n/2 + 1:
			return after
		default:
			return wall
		}
	}

	rows := make([]string, height)
	var sb strings.Builder
	for y := 0; y < height; y++ {
		sb.Reset()
		for x := 0; x < width; x++ {
			var c byte
			switch {
			case y == 0 && x == 0:
				c = 'a'
			case y == 0 && x == width-1:
				c = 'b'
			case y == height-1 && x == 0:
				c = 'c'
			case y == height-1 && x == width-1:
				c = 'd'
			case y == 0:
				c = side(x, width, '-', 'N', '1', '2')
			case y == height-1:
				c = side(x, width, '_', 'S', '3', '4')
			case x == 0:
				c = side(y, height, '[', 'W', '7', '8')
			case x == width-1:
				c = side(y, height, ']', 'E', '5', '6')
			default:
				c = '.'
			}
			sb.WriteByte(c)
		}
		rows[y] = sb.String()
	}
	return rows
}

// cell is how one template character renders for an open and a closed side.
type cell struct {
	side   Doors
	open   level.Tile
	frame  level.Tile
	closed level.Tile
}

var legend = map[byte]cell{
	'a': {closed: level.NorthwestCornerWall},
	'b': {closed: level.NortheastCornerWall},
	'c': {closed: level.SouthwestCornerWall},
	'd': {closed: level.SoutheastCornerWall},
	'-': {closed: level.NorthWall},
	'_': {closed: level.SouthWall},
	'[': {closed: level.WestWall},
	']': {closed: level.EastWall},
	'.': {closed: level.Floor},

	'N': {side: DoorNorth, open: level.NorthDoorway, closed: level.NorthWall},
	'E': {side: DoorEast, open: level.EastDoorway, closed: level.EastWall},
	'S': {side: DoorSouth, open: level.SouthDoorway, closed: level.SouthWall},
	'W': {side: DoorWest, open: level.WestDoorway, closed: level.WestWall},

	'1': {side: DoorNorth, open: level.NorthDoorWest, frame: level.NorthDoorframeWest, closed: level.NorthWall},
	'2': {side: DoorNorth, open: level.NorthDoorEast, frame: level.NorthDoorframeEast, closed: level.NorthWall},
	'3': {side: DoorSouth, open: level.SouthDoorWest, frame: level.SouthDoorframeWest, closed: level.SouthWall},
	'4': {side: DoorSouth, open: level.SouthDoorEast, frame: level.SouthDoorframeEast, closed: level.SouthWall},
	'5': {side: DoorEast, open: level.EastDoorNorth, frame: level.EastDoorframeNorth, closed: level.EastWall},
	'6': {side: DoorEast, open: level.EastDoorSouth, frame: level.EastDoorframeSouth, closed: level.EastWall},
	'7': {side: DoorWest, open: level.WestDoorNorth, frame: level.WestDoorframeNorth, closed: level.WestWall},
	'8': {side: DoorWest, open: level.WestDoorSouth, frame: level.WestDoorframeSouth, closed: level.WestWall},
}

// NewBlockTable renders the template once for every door mask.
func NewBlockTable(width, height int) BlockTable {
	art := roomArt(width, height)

	var table BlockTable
	for mask := range table {
		doors := Doors(mask)
		block := Block{
			Furniture:  make([][]level.Tile, height),
			Foreground: make([][]level.Tile, height),
		}
		for y, row := range art {
			block.Furniture[y] = make([]level.Tile, width)
			block.Foreground[y] = make([]level.Tile, width)
			for x := 0; x < len(row); x++ {
				c := legend[row[x]]
				if c.side != 0 && doors.Has(c.side) {
					block.Furniture[y][x] = c.open
					block.Foreground[y][x] = c.frame
				} else {
					block.Furniture[y][x] = c.closed
				}
			}
		}
		table[mask] = block
	}
	return table
}

var standardBlocks = NewBlockTable(DefaultRoomWidth, DefaultRoomHeight)

func blocksFor(width, height int) BlockTable {
	if width == DefaultRoomWidth && height == DefaultRoomHeight {
		return standardBlocks
	}
	return NewBlockTable(width, height)
}
