// Package dfs implements iterative depth-first search over a core.Graph,
// returning the first path found to a goal (not necessarily the shortest)
// together with the full visit order.
//
// What
//
//   - Explicit stack of (node, path-so-far) frames; no recursion.
//   - A node may be pushed several times; visited membership is checked at
//     POP time, and stale duplicate frames are skipped.
//   - Unvisited neighbors are sorted in DESCENDING lexical order before
//     being pushed, which yields ascending lexical preference when popped.
//     The traversal is therefore fully deterministic for a fixed graph
//     state and filter settings. This push/pop discipline is load-bearing:
//     checking visited at push time would change the traversal order.
//   - Honors the same traversal filters as package bfs: accessible-only
//     mode and the closed-edge exclusion.
//
// Result
//
//   - Path: start→goal names, nil when the goal is unreachable (a normal
//     outcome, never an error).
//   - Order: the sequence in which nodes were popped and finalized.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V·E) against the model's linear neighbor scan.
//   - Memory: O(V²) worst case for the per-frame path copies; fine at the
//     interactive scales this package serves.
//
// Usage
//
//	res, err := dfs.Search(g, "Library", "Gym", dfs.WithAccessibleOnly())
//	if err != nil { ... }
//	if res.Found() { fmt.Println(res.Path) }
package dfs
