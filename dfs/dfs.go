package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/campusnav/core"
)

// frame is a stack entry: a candidate node and the path that reached it.
type frame struct {
	name string
	path []string
}

// Search runs depth-first search on g from start to goal, applying any
// number of functional Options. The returned path is the first one found
// under the deterministic pop order, not necessarily the shortest.
//
// A missing path is reported through Result.Path == nil, never as an error.
// Returns ErrGraphNil, ErrStartNotFound, or ErrGoalNotFound for invalid
// input, a context error on cancellation, or any OnVisit hook error.
func Search(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !g.HasNode(start) {
		return nil, ErrStartNotFound
	}
	if !g.HasNode(goal) {
		return nil, ErrGoalNotFound
	}

	n := g.NodeCount()
	stack := []frame{{name: start, path: []string{start}}}
	visited := make(map[string]bool, n)
	res := &Result{Order: make([]string, 0, n)}

	for len(stack) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// A node may sit on the stack more than once; only the first pop
		// counts, later frames are stale.
		if visited[top.name] {
			continue
		}
		visited[top.name] = true
		res.Order = append(res.Order, top.name)

		if err := o.OnVisit(top.name); err != nil {
			return nil, fmt.Errorf("dfs: OnVisit error at %q: %w", top.name, err)
		}

		if top.name == goal {
			res.Path = top.path
			return res, nil
		}

		// Descending sort before pushing onto the stack yields ascending
		// lexical preference when popping.
		nbrs := unvisited(g.Neighbors(top.name, o.Filter), visited)
		sort.Sort(sort.Reverse(sort.StringSlice(nbrs)))
		for _, nbr := range nbrs {
			next := make([]string, len(top.path)+1)
			copy(next, top.path)
			next[len(top.path)] = nbr
			stack = append(stack, frame{name: nbr, path: next})
		}
	}

	// stack exhausted: no path, Path stays nil
	return res, nil
}

// unvisited filters names down to those not yet finalized.
func unvisited(names []string, visited map[string]bool) []string {
	out := names[:0]
	for _, name := range names {
		if !visited[name] {
			out = append(out, name)
		}
	}

	return out
}
