// Package anim turns a finished search result into a timed sequence of
// presentation steps and plays it back on a fixed interval.
//
// What
//
//   - BuildSteps(order, path): one StepVisit per node in visit order, then
//     one StepPathEdge per consecutive pair of the final path.
//   - Player: schedules steps one at a time with a fixed inter-step delay.
//     Play cancels any run still in flight before starting the new one, so
//     a pending step from a stale run is discarded and never bleeds into
//     the new sequence. Stop cancels outright.
//
// The player owns no graph state: it only emits steps; drawing them is the
// caller's business. Each run carries a short run ID for debug logging.
//
// Callbacks fire on the player's goroutine. Callers that must touch
// single-threaded state (a terminal screen, for instance) should forward
// steps into their own event loop.
package anim
