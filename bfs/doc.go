// Package bfs provides fewest-hop search over a core.Graph, returning the
// minimum-hop path to a goal together with the full visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node until the
//     goal is dequeued or the frontier empties.
//   - Returns a Result containing:
//   - Path: start→goal node names, nil when the goal is unreachable
//     (a legitimate outcome, never an error)
//   - Order: the sequence in which nodes were dequeued and finalized
//   - Parent: map from node → its predecessor in the BFS tree
//   - Honors the model's two traversal filters: accessible-only mode and
//     the closed-edge exclusion.
//   - Supports hooks for live visualization: OnEnqueue and OnVisit.
//
// Optimality
//
//	Each node is marked visited and its parent recorded at ENQUEUE time,
//	so a node enters the frontier at most once and the first path that
//	reaches the goal has minimum hop count.
//
// Determinism
//
//	core.Neighbors returns names sorted ascending and the frontier is FIFO,
//	so the visit sequence is fully reproducible for a fixed graph state.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V·E) against the model's linear neighbor scan; O(V + E)
//     in graph-theoretic terms.
//   - Memory: O(V) for frontier, visited set, and parent map.
//
// Usage
//
//	res, err := bfs.Search(g, "Library", "Gym",
//	    bfs.WithAccessibleOnly(),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrStartNotFound, ErrGoalNotFound,
//	    // context errors, or a hook error
//	}
//	if res.Found() {
//	    fmt.Println(res.Path, res.Hops())
//	}
//
// The search is a pure function of the graph state at call time: nothing is
// cached between calls, so any mutation is reflected by the next Search.
package bfs
