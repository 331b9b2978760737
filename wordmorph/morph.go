// Package wordmorph finds minimum-cost morph sequences between words of
// equal length. Words are the vertices of one undirected graph per word
// length; two words are connected if they differ in at most a per-length
// maximum number of characters, with the squared number of differences as
// edge weight. Queries run Dijkstra's algorithm over the graph of the
// queried length and reconstruct the word sequence from the resulting
// shortest-path tree.
package wordmorph

import (
	"fmt"

	"github.com/rhartert/sparsesets"
)

// Result is the outcome of one morph query. A query that cannot be answered
// (words of different lengths, word missing from the dictionary, or no morph
// sequence between the two words) has a nil Path; this is a normal outcome,
// not an error.
type Result struct {
	From string
	To   string
	Cost int
	Path []string
}

// NoPath returns true if the query could not be answered.
func (r Result) NoPath() bool {
	return r.Path == nil
}

// Morpher answers word-morph queries against a fixed dictionary. It holds
// one graph per word length; once built, a Morpher is read-only and each
// query allocates its own working state, so queries never interfere with
// each other.
type Morpher struct {
	graphs  []*Graph[string]
	lengths *sparsesets.Set
}

// Build constructs a Morpher from a dictionary. The maxPerms slice maps each
// word length to the maximum number of character changes allowed in one morph
// step for that length; lengths with a zero maximum get no graph and their
// words are ignored, as are words longer than the slice.
//
// Building runs the O(V²) edge pass on every graph and is by far the most
// expensive step; it is meant to run once, with the Morpher answering any
// number of queries afterwards.
func Build(words []string, maxPerms []int) (*Morpher, error) {
	counts := make([]int, len(maxPerms))
	for _, w := range words {
		if n := len(w); n < len(maxPerms) && maxPerms[n] > 0 {
			counts[n]++
		}
	}

	m := &Morpher{
		graphs:  make([]*Graph[string], len(maxPerms)),
		lengths: sparsesets.New(len(maxPerms)),
	}
	for n, c := range counts {
		if c == 0 {
			continue
		}
		g, err := New[string](c, maxPerms[n])
		if err != nil {
			return nil, fmt.Errorf("graph for length %d: %w", n, err)
		}
		m.graphs[n] = g
		m.lengths.Insert(n)
	}

	for _, w := range words {
		if n := len(w); n < len(maxPerms) && m.graphs[n] != nil {
			if _, err := m.graphs[n].Insert(w); err != nil {
				return nil, fmt.Errorf("inserting %q: %w", w, err)
			}
		}
	}

	for _, n := range m.lengths.Content() {
		if err := m.graphs[n].Build(Diff); err != nil {
			return nil, fmt.Errorf("building edges for length %d: %w", n, err)
		}
	}

	return m, nil
}

// Solve answers a single morph query from one word to another. Queries that
// cannot be answered yield a NoPath result; an error is only returned if an
// internal invariant is broken and never just because of the query's words.
func (m *Morpher) Solve(from string, to string) (Result, error) {
	res := Result{From: from, To: to}

	n := len(from)
	if n != len(to) || len(m.graphs) <= n || !m.lengths.Contains(n) {
		return res, nil
	}

	g := m.graphs[n]
	src := g.Find(from, Equal)
	dst := g.Find(to, Equal)
	if src == -1 || dst == -1 {
		return res, nil
	}

	tree, err := ShortestPath(g, src)
	if err != nil {
		return res, err
	}
	ids, ok := tree.PathTo(dst)
	if !ok {
		return res, nil
	}

	path := make([]string, len(ids))
	for i, v := range ids {
		word, err := g.Item(v)
		if err != nil {
			return res, err
		}
		path[i] = word
	}

	res.Cost = tree.Dist(dst)
	res.Path = path
	return res, nil
}

// Lengths returns the word lengths the Morpher holds a graph for, in build
// order.
//
// Important: the slice is a view on one of the Morpher's internal structures
// and should only be used in read-only operations.
func (m *Morpher) Lengths() []int {
	return m.lengths.Content()
}
