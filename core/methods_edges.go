// Package core: edge lifecycle, in-place edge mutation, and edge queries.
//
// Edges are stored once under their canonical pair key; every accessor is
// symmetric in its two endpoint arguments.

package core

import "sort"

// Connect inserts a new open edge between a and b with the given weights
// and accessibility.
//
// Returns ErrMissingEndpoint if either node is absent, ErrSelfLoop if
// a == b, ErrDuplicateEdge if the pair already has an edge. A failed
// Connect leaves the graph untouched.
// Complexity: O(1) amortized.
func (g *Graph) Connect(a, b string, distance, time float64, accessible bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[a]; !ok {
		return ErrMissingEndpoint
	}
	if _, ok := g.nodes[b]; !ok {
		return ErrMissingEndpoint
	}
	if a == b {
		return ErrSelfLoop
	}

	k := keyOf(a, b)
	if _, exists := g.edges[k]; exists {
		return ErrDuplicateEdge
	}

	g.edges[k] = &Edge{
		A:          k.a,
		B:          k.b,
		Distance:   distance,
		Time:       time,
		Accessible: accessible,
		Closed:     false,
	}

	return nil
}

// Disconnect removes the edge between a and b. A missing edge is a no-op.
// Complexity: O(1).
func (g *Graph) Disconnect(a, b string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.edges, keyOf(a, b))
}

// GetEdge returns a copy of the edge for the unordered pair {a,b} and
// whether it exists. Symmetric: GetEdge(a,b) == GetEdge(b,a).
// Complexity: O(1).
func (g *Graph) GetEdge(a, b string) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[keyOf(a, b)]
	if !ok {
		return Edge{}, false
	}

	return *e, true
}

// HasEdge reports whether the unordered pair {a,b} has an edge.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[keyOf(a, b)]

	return ok
}

// ToggleClosed flips the Closed flag on the edge {a,b} and returns the new
// value. Returns ErrEdgeNotFound if the pair has no edge.
// Complexity: O(1).
func (g *Graph) ToggleClosed(a, b string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[keyOf(a, b)]
	if !ok {
		return false, ErrEdgeNotFound
	}
	e.Closed = !e.Closed

	return e.Closed, nil
}

// ToggleAccessible flips the Accessible flag on the edge {a,b} and returns
// the new value. Returns ErrEdgeNotFound if the pair has no edge.
// Complexity: O(1).
func (g *Graph) ToggleAccessible(a, b string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[keyOf(a, b)]
	if !ok {
		return false, ErrEdgeNotFound
	}
	e.Accessible = !e.Accessible

	return e.Accessible, nil
}

// RandomizeWeights redraws Distance and Time on every edge as independent
// uniform integers in [min, max] inclusive. Weights stay positive, so min
// must be at least 1 and not exceed max; otherwise ErrWeightRange.
// Zero edges is a no-op, not an error.
// Complexity: O(E).
func (g *Graph) RandomizeWeights(min, max int) error {
	if min < 1 || min > max {
		return ErrWeightRange
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	span := max - min + 1
	for _, e := range g.edges {
		e.Distance = float64(min + g.rng.Intn(span))
		e.Time = float64(min + g.rng.Intn(span))
	}

	return nil
}

// Edges returns copies of all edges, sorted by canonical pair for
// reproducible iteration.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}

		return out[i].B < out[j].B
	})

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
