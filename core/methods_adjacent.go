// Package core: filtered one-hop adjacency, the single query the traversal
// engines consult.

package core

import "sort"

// Neighbors returns the names of all nodes reachable from name by one edge
// that survives the filter. The two exclusions are independent and combined
// with AND: an edge is skipped if it is closed and f.AllowClosed is false,
// or if f.AccessibleOnly is set and the edge is not accessible.
//
// An unknown name yields an empty result. The slice is sorted ascending so
// traversals over a fixed graph are reproducible.
// Complexity: O(E + d log d) where d is the degree of name.
func (g *Graph) Neighbors(name string, f Filter) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []string
	for k, e := range g.edges {
		if k.a != name && k.b != name {
			continue
		}
		if e.Closed && !f.AllowClosed {
			continue
		}
		if f.AccessibleOnly && !e.Accessible {
			continue
		}
		out = append(out, e.Other(name))
	}
	sort.Strings(out)

	return out
}

// Degree returns the number of edges incident to name, ignoring filters.
// Complexity: O(E).
func (g *Graph) Degree(name string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	count := 0
	for k := range g.edges {
		if k.a == name || k.b == name {
			count++
		}
	}

	return count
}
