package wordmorph

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphFull is returned when inserting a vertex into a graph that
	// already holds as many vertices as its declared capacity.
	ErrGraphFull = errors.New("graph is full")

	// ErrVertexRange is returned when a vertex id is not in the graph.
	ErrVertexRange = errors.New("vertex is not in the graph")
)

// Edge represents one half of an undirected connection: the id of the vertex
// it reaches and the weight of the connection. The mirror half lives in the
// adjacency of the other endpoint.
type Edge struct {
	To     int
	Weight int
}

// CostFunc computes the cost of connecting items a and b given the graph's
// maximum acceptable cost. Implementations are free to return any value
// greater than max to reject the connection.
type CostFunc[T any] func(a, b T, max int) int

// Graph is an undirected weighted graph with a fixed vertex capacity.
// Vertices are added one by one with Insert and are identified by dense ids
// in [0, Order()). Edges are created in a single Build pass; after Build the
// graph is read-only.
type Graph[T any] struct {
	items     []T
	adj       [][]Edge
	capacity  int
	maxWeight int
	built     bool
}

// New returns an empty graph able to hold up to capacity vertices and to
// accept connections of cost up to maxWeight during the Build pass.
func New[T any](capacity int, maxWeight int) (*Graph[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("graph capacity must be positive, got %d", capacity)
	}
	if maxWeight < 0 {
		return nil, fmt.Errorf("max weight must be non-negative, got %d", maxWeight)
	}
	return &Graph[T]{
		items:     make([]T, 0, capacity),
		adj:       make([][]Edge, 0, capacity),
		capacity:  capacity,
		maxWeight: maxWeight,
	}, nil
}

// Order returns the number of vertices inserted so far.
func (g *Graph[T]) Order() int {
	return len(g.items)
}

// Cap returns the declared vertex capacity.
func (g *Graph[T]) Cap() int {
	return g.capacity
}

// MaxWeight returns the graph's maximum edge weight. Before Build this is
// the maximum acceptable connection cost; Build squares it along with the
// weights of the accepted edges.
func (g *Graph[T]) MaxWeight() int {
	return g.maxWeight
}

// Insert appends a vertex holding item and returns its id. It returns
// ErrGraphFull if the graph already holds Cap() vertices.
func (g *Graph[T]) Insert(item T) (int, error) {
	if len(g.items) == g.capacity {
		return -1, fmt.Errorf("inserting vertex %d: %w", g.capacity, ErrGraphFull)
	}
	g.items = append(g.items, item)
	g.adj = append(g.adj, nil)
	return len(g.items) - 1, nil
}

// Find returns the id of the first vertex whose item compares equal to query
// under eq, or -1 if there is none.
func (g *Graph[T]) Find(query T, eq func(a, b T) bool) int {
	for v, item := range g.items {
		if eq(item, query) {
			return v
		}
	}
	return -1
}

// Item returns the item held by vertex v.
func (g *Graph[T]) Item(v int) (T, error) {
	if v < 0 || len(g.items) <= v {
		var zero T
		return zero, fmt.Errorf("%w: %d", ErrVertexRange, v)
	}
	return g.items[v], nil
}

// Adjacency returns the edges leaving vertex v, or nil if v is not in the
// graph.
//
// Important: the slice is a view on one of the graph's internal structures
// and should only be used in read-only operations. Modifying the slice will
// most likely results in incorrect behavior.
func (g *Graph[T]) Adjacency(v int) []Edge {
	if v < 0 || len(g.adj) <= v {
		return nil
	}
	return g.adj[v]
}

// AddEdge connects vertices v and w with the given weight. The connection is
// undirected: an entry is added to the adjacency of both endpoints, each
// carrying the same weight. Self-loops are rejected.
func (g *Graph[T]) AddEdge(v int, w int, weight int) error {
	if v < 0 || len(g.items) <= v {
		return fmt.Errorf("%w: %d", ErrVertexRange, v)
	}
	if w < 0 || len(g.items) <= w {
		return fmt.Errorf("%w: %d", ErrVertexRange, w)
	}
	if v == w {
		return fmt.Errorf("self-loop on vertex %d", v)
	}
	if weight < 0 {
		return fmt.Errorf("edge weight must be non-negative, got %d", weight)
	}
	g.adj[v] = append(g.adj[v], Edge{To: w, Weight: weight})
	g.adj[w] = append(g.adj[w], Edge{To: v, Weight: weight})
	return nil
}

// Build creates the graph's edges in a single O(V²) pass over all pairs of
// vertices: a pair is connected if its cost is within MaxWeight, with the
// squared cost as edge weight. Once the pass is done, MaxWeight itself is
// squared so that it keeps bounding the edge weights. Build must be called
// exactly once, after all vertices have been inserted.
func (g *Graph[T]) Build(cost CostFunc[T]) error {
	if g.built {
		return errors.New("graph edges have already been built")
	}
	for v := 1; v < len(g.items); v++ {
		for w := 0; w < v; w++ {
			c := cost(g.items[v], g.items[w], g.maxWeight)
			if c > g.maxWeight {
				continue
			}
			if err := g.AddEdge(v, w, c*c); err != nil {
				return err
			}
		}
	}
	g.maxWeight *= g.maxWeight
	g.built = true
	return nil
}
