package wordmorph

import (
	"fmt"
	"math"

	"github.com/rhartert/word-morph/wordmorph/pqueue"
)

// Infinity is the sentinel distance of vertices that have not been reached.
const Infinity = math.MaxInt

// NoPrev is the sentinel predecessor of the source and of unreachable
// vertices.
const NoPrev = -1

// PathTree is the result of a single-source shortest-path computation: the
// minimum cost to reach every vertex from Source and, for each reachable
// vertex, its predecessor on one minimum-cost path.
type PathTree struct {
	Source int

	dist []int
	prev []int
}

// ShortestPath computes the minimum-cost paths from src to every vertex of g
// using Dijkstra's algorithm. Vertices that cannot be reached from src keep
// the Infinity distance and the NoPrev predecessor.
func ShortestPath[T any](g *Graph[T], src int) (*PathTree, error) {
	n := g.Order()
	if src < 0 || n <= src {
		return nil, fmt.Errorf("%w: %d", ErrVertexRange, src)
	}

	dist := make([]int, n)
	prev := make([]int, n)
	for v := 0; v < n; v++ {
		dist[v] = Infinity
		prev[v] = NoPrev
	}

	// Order by tentative distance, breaking ties on vertex id so that
	// equal-cost relaxations resolve the same way on every run.
	queue := pqueue.New(n, func(a, b int) bool {
		if dist[a] != dist[b] {
			return dist[a] < dist[b]
		}
		return a < b
	})
	for v := 0; v < n; v++ {
		queue.Push(v)
	}

	dist[src] = 0
	queue.Fix(src)

	for !queue.Empty() {
		v, _ := queue.Pop()
		if dist[v] == Infinity {
			continue // unreachable, nothing to relax
		}
		for _, e := range g.Adjacency(v) {
			if c := dist[v] + e.Weight; c < dist[e.To] {
				dist[e.To] = c
				prev[e.To] = v
				queue.Fix(e.To)
			}
		}
	}

	return &PathTree{Source: src, dist: dist, prev: prev}, nil
}

// Dist returns the minimum cost to reach v from the source, or Infinity if v
// is unreachable.
func (t *PathTree) Dist(v int) int {
	return t.dist[v]
}

// Prev returns the predecessor of v on a minimum-cost path from the source,
// or NoPrev if v is the source or is unreachable.
func (t *PathTree) Prev(v int) int {
	return t.prev[v]
}

// Reachable returns true if there is a path from the source to v.
func (t *PathTree) Reachable(v int) bool {
	return 0 <= v && v < len(t.dist) && t.dist[v] != Infinity
}

// PathTo returns the sequence of vertices on a minimum-cost path from the
// source to dst, both included. It returns false if dst is unreachable. A
// query for the source itself returns the one-element path.
func (t *PathTree) PathTo(dst int) ([]int, bool) {
	if dst < 0 || len(t.prev) <= dst {
		return nil, false
	}
	if dst == t.Source {
		return []int{dst}, true
	}
	if t.prev[dst] == NoPrev {
		return nil, false
	}

	path := []int{}
	for v := dst; v != NoPrev; v = t.prev[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
