package builder

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// nodeSpec places one building.
type nodeSpec struct {
	name string
	x, y float64
}

// edgeSpec links two buildings with weights and accessibility.
type edgeSpec struct {
	a, b       string
	distance   float64
	time       float64
	accessible bool
	closed     bool
}

// build materializes specs into a graph, wrapping any core error with the
// preset name for context.
func build(preset string, nodes []nodeSpec, edges []edgeSpec, opts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(opts...)
	for _, n := range nodes {
		if err := g.AddNode(n.name, n.x, n.y); err != nil {
			return nil, fmt.Errorf("builder: %s: node %q: %w", preset, n.name, err)
		}
	}
	for _, e := range edges {
		if err := g.Connect(e.a, e.b, e.distance, e.time, e.accessible); err != nil {
			return nil, fmt.Errorf("builder: %s: edge %s–%s: %w", preset, e.a, e.b, err)
		}
		if e.closed {
			if _, err := g.ToggleClosed(e.a, e.b); err != nil {
				return nil, fmt.Errorf("builder: %s: edge %s–%s: %w", preset, e.a, e.b, err)
			}
		}
	}

	return g, nil
}

// Demo returns the campus the editor preloads by default: nine
// buildings laid out for a 900×600 canvas, with one closed walkway and a
// couple of stairs-only links so every traversal filter has something to
// bite on.
func Demo(opts ...core.GraphOption) (*core.Graph, error) {
	nodes := []nodeSpec{
		{"Admissions", 120, 90},
		{"Library", 320, 140},
		{"Quad", 460, 300},
		{"Science Hall", 700, 120},
		{"Gym", 760, 420},
		{"Student Union", 300, 420},
		{"Dorm A", 120, 500},
		{"Dorm B", 560, 520},
		{"Cafeteria", 480, 440},
	}
	edges := []edgeSpec{
		{a: "Admissions", b: "Library", distance: 60, time: 2, accessible: true},
		{a: "Library", b: "Quad", distance: 70, time: 3, accessible: true},
		{a: "Library", b: "Science Hall", distance: 120, time: 5, accessible: true},
		{a: "Quad", b: "Science Hall", distance: 90, time: 4, accessible: false}, // stairs
		{a: "Quad", b: "Cafeteria", distance: 40, time: 2, accessible: true},
		{a: "Quad", b: "Student Union", distance: 55, time: 3, accessible: true},
		{a: "Student Union", b: "Dorm A", distance: 65, time: 3, accessible: true},
		{a: "Cafeteria", b: "Dorm B", distance: 45, time: 2, accessible: true},
		{a: "Cafeteria", b: "Gym", distance: 85, time: 4, accessible: true},
		{a: "Science Hall", b: "Gym", distance: 110, time: 5, accessible: false}, // stairs
		{a: "Dorm B", b: "Gym", distance: 70, time: 3, accessible: true, closed: true}, // construction
		{a: "Dorm A", b: "Dorm B", distance: 130, time: 6, accessible: true},
	}

	return build("demo", nodes, edges, opts...)
}

// Chain returns the three-node X–Y–Z fixture used throughout the traversal
// tests: both edges open and accessible.
func Chain(opts ...core.GraphOption) (*core.Graph, error) {
	nodes := []nodeSpec{
		{"X", 100, 100},
		{"Y", 300, 100},
		{"Z", 500, 100},
	}
	edges := []edgeSpec{
		{a: "X", b: "Y", distance: 1, time: 1, accessible: true},
		{a: "Y", b: "Z", distance: 1, time: 1, accessible: true},
	}

	return build("chain", nodes, edges, opts...)
}

// Diamond returns A–{B,C}–D with equal weights: the smallest graph where
// BFS and DFS can legitimately disagree on the route while agreeing on the
// hop count.
func Diamond(opts ...core.GraphOption) (*core.Graph, error) {
	nodes := []nodeSpec{
		{"A", 100, 300},
		{"B", 300, 150},
		{"C", 300, 450},
		{"D", 500, 300},
	}
	edges := []edgeSpec{
		{a: "A", b: "B", distance: 1, time: 1, accessible: true},
		{a: "A", b: "C", distance: 1, time: 1, accessible: true},
		{a: "B", b: "D", distance: 1, time: 1, accessible: true},
		{a: "C", b: "D", distance: 1, time: 1, accessible: true},
	}

	return build("diamond", nodes, edges, opts...)
}
