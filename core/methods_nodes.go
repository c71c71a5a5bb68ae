// Package core: node lifecycle and node queries.
//
// All operations are O(1) map work except RemoveNode, which scans incident
// edges, and Nodes, which sorts its snapshot for deterministic iteration.

package core

import "sort"

// AddNode inserts a new node with the given name and position.
// Returns ErrDuplicateName if the name is already present. The model does
// not trim or otherwise validate the name; that belongs to the caller
// collecting it.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(name string, x, y float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[name]; exists {
		return ErrDuplicateName
	}
	g.nodes[name] = &Node{Name: name, X: x, Y: y}

	return nil
}

// HasNode reports whether a node with the given name exists.
// Complexity: O(1).
func (g *Graph) HasNode(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.nodes[name]

	return exists
}

// Node returns a copy of the named node and whether it exists.
// Complexity: O(1).
func (g *Graph) Node(name string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[name]
	if !ok {
		return Node{}, false
	}

	return *n, true
}

// RemoveNode deletes the node and every edge incident to it.
// A missing node is a no-op, not an error.
// Complexity: O(E) over the edge table.
func (g *Graph) RemoveNode(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[name]; !exists {
		return
	}
	for k := range g.edges {
		if k.a == name || k.b == name {
			delete(g.edges, k)
		}
	}
	delete(g.nodes, name)
}

// Nodes returns copies of all nodes, sorted by name for reproducible
// iteration.
// Complexity: O(V log V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}
