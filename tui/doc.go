// Package tui is the interactive terminal front-end for the campus graph:
// a full-screen tcell editor where buildings are placed with the mouse,
// connected with weighted walkways, and searched with live traversal
// playback.
//
// Modes
//
//   - normal: left-click empty canvas prompts for a building name and
//     places it there; left-click a building shows its details; right-click
//     a building removes it (cascading its walkways); right-click a
//     walkway toggles it closed/open.
//   - connect: two left-clicks pick the endpoints, then inline prompts
//     collect distance, time, and accessibility.
//   - edge-select: left-click near a walkway selects it; 'o' toggles
//     closed, 'x' toggles accessible, 'u' disconnects it.
//
// Keys: c connect mode, e edge-select mode, a accessible-only, r randomize
// weights, b/d run BFS/DFS (prompting for start and goal), Esc cancel,
// q quit.
//
// The model holds only semantic state; everything visual — label boxes,
// visited overlays, final-path highlights — lives in this package's side
// tables keyed by node name or canonical edge pair. Traversal playback is
// driven by anim.Player; its steps arrive through the tcell event queue so
// all drawing stays on the event loop, and launching a new search cancels
// the replay still in flight.
package tui
