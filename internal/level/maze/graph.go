// Package maze generates grid-of-rooms levels: a room adjacency graph, a
// randomized depth-first carve between two rooms, and the tile blocks stamped
// for each room.
package maze

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Sampler picks uniformly from [0, n). *math/rand.Rand satisfies it.
type Sampler interface {
	Intn(n int) int
}

// RoomGraph returns the adjacency lists of a width x height grid of rooms.
// Room r sits at column r%width, row r/width and links to its horizontal and
// vertical neighbours.
func RoomGraph(width, height int) [][]int {
	graph := make([][]int, width*height)
	for from := range graph {
		fx, fy := from%width, from/width
		for _, d := range [][2]int{{1, 0}, {0, 1}} {
			ox, oy := fx+d[0], fy+d[1]
			if ox < width && oy < height {
				to := oy*width + ox
				graph[from] = append(graph[from], to)
				graph[to] = append(graph[to], from)
			}
		}
	}
	return graph
}

// edge is an undirected room link stored with A < B.
type edge struct {
	A, B int
}

func newEdge(a, b int) edge {
	if a > b {
		a, b = b, a
	}
	return edge{A: a, B: b}
}

// Carve walks graph depth first from start, choosing an unused exit at random
// at each step and backing up at dead ends, until it stands on end or has
// nowhere left to go. The crossed edges are returned as mirrored adjacency
// lists in ascending order.
func Carve(start, end int, graph [][]int, sampler Sampler) [][]int {
	crossed := mapset.New[edge]()
	stack := []int{start}

	for len(stack) > 0 && stack[len(stack)-1] != end {
		at := stack[len(stack)-1]

		var exits []int
		for _, out := range graph[at] {
			if !crossed.Has(newEdge(at, out)) {
				exits = append(exits, out)
			}
		}

		if len(exits) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		out := exits[sampler.Intn(len(exits))]
		crossed.Put(newEdge(at, out))
		stack = append(stack, out)
	}

	carved := make([][]int, len(graph))
	crossed.Each(func(e edge) {
		carved[e.A] = append(carved[e.A], e.B)
		carved[e.B] = append(carved[e.B], e.A)
	})
	for _, links := range carved {
		slices.Sort(links)
	}
	return carved
}
