// Package dfs: options, sentinel errors, and the Result type.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/campusnav/core"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound is returned when the start node is absent.
	ErrStartNotFound = errors.New("dfs: start node not found")

	// ErrGoalNotFound is returned when the goal node is absent.
	ErrGoalNotFound = errors.New("dfs: goal node not found")
)

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a Search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Filter selects which edges the search may cross; zero value excludes
	// closed edges and ignores accessibility.
	Filter core.Filter

	// OnVisit is called when a node is popped and finalized. Returning an
	// error aborts the search and propagates that error.
	OnVisit func(name string) error
}

// DefaultOptions returns Options with a background context, the default
// filter, and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Filter:  core.Filter{},
		OnVisit: func(string) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAccessibleOnly excludes non-accessible edges from the search.
func WithAccessibleOnly() Option {
	return func(o *Options) { o.Filter.AccessibleOnly = true }
}

// WithAllowClosed lets the search cross closed edges.
func WithAllowClosed() Option {
	return func(o *Options) { o.Filter.AllowClosed = true }
}

// WithFilter replaces the edge filter wholesale.
func WithFilter(f core.Filter) Option {
	return func(o *Options) { o.Filter = f }
}

// WithOnVisit registers a callback to run when a node is finalized;
// returning an error from it stops the search.
func WithOnVisit(fn func(name string) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a depth-first search:
//   - Path: start→goal names, nil when no path exists under the filter.
//   - Order: nodes in the sequence they were popped and finalized.
type Result struct {
	Path  []string
	Order []string
}

// Found reports whether the goal was reached.
func (r *Result) Found() bool {
	return r.Path != nil
}

// Hops returns the number of edges in the found path, or -1 when no path
// was found.
func (r *Result) Hops() int {
	if r.Path == nil {
		return -1
	}

	return len(r.Path) - 1
}
