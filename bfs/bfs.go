package bfs

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// queueItem pairs a node name with its hop depth from the start.
type queueItem struct {
	name  string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	goal    string
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Search runs fewest-hop search on g from start to goal, applying any
// number of functional Options.
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
	w := &walker{
		graph:   g,
		opts:    o,
		goal:    goal,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed the frontier with the start node at depth zero.
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// enqueue marks name visited, records its parent link, fires OnEnqueue, and
// appends it to the frontier. Marking at enqueue time guarantees each node
// enters the frontier at most once.
func (w *walker) enqueue(name string, depth int, parent string) {
	w.visited[name] = true
	if parent != "" {
		w.res.Parent[name] = parent
	}
	w.opts.OnEnqueue(name, depth)
	w.queue = append(w.queue, queueItem{name: name, depth: depth})
}

// loop processes the frontier until the goal is finalized, the frontier
// empties, an error occurs, or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.name)
		if err := w.opts.OnVisit(item.name); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.name, err)
		}

		if item.name == w.goal {
			w.res.Path = w.reconstruct()
			return nil
		}

		for _, nbr := range w.graph.Neighbors(item.name, w.opts.Filter) {
			if !w.visited[nbr] {
				w.enqueue(nbr, item.depth+1, item.name)
			}
		}
	}

	// frontier exhausted: no path, Path stays nil
	return nil
}

// reconstruct walks parent links from the goal back to the start and
// reverses the result.
func (w *walker) reconstruct() []string {
	path := []string{}
	for cur := w.goal; ; {
		path = append(path, cur)
		prev, ok := w.res.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
