// Package campusnav is an interactive campus map: an in-memory weighted
// graph of buildings and walkways, with live BFS/DFS route playback in a
// full-screen terminal UI.
//
// 🚀 What is campusnav?
//
//	A small, thread-safe toolkit for modeling and exploring a campus:
//		• Core primitives: buildings & undirected walkways, mutated safely under locks
//		• Walkway state: distance/time weights, closed-for-construction, accessibility
//		• Traversals: BFS (fewest hops) & DFS, both filter-aware with hooks
//		• Spatial queries: which building or walkway is under a point
//		• Playback: step-by-step traversal animation with cancellation
//		• Front-end: a tcell editor with mouse placement and inline prompts
//
// ✨ Why choose campusnav?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – R/W locks, deterministic ordering, in-code docs & hooks
//   - Extensible – add custom hooks (OnVisit, OnEnqueue…) for custom logic
//
// Under the hood, everything is organized under small subpackages:
//
//	core/    — Graph, Node, Edge types & thread-safe primitives
//	bfs/     — breadth-first search with parent map and hop counts
//	dfs/     — depth-first search with deterministic neighbor order
//	geom/    — point/segment distance math for hit-testing
//	hittest/ — resolve screen points to buildings and walkways
//	anim/    — traversal replay: step building and the timed player
//	builder/ — ready-made campus maps for demos and tests
//	config/  — YAML configuration with validated defaults
//	tui/     — the tcell editor (modes, prompts, rendering)
//
// Start with builder.Demo, run a search with bfs.Search or dfs.Search, or
// launch the whole editor via cmd/campusnav.
package campusnav
