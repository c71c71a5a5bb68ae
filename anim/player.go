package anim

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultInterval is the inter-step delay used when none is configured,
// matching the editor's default animation speed.
const DefaultInterval = 200 * time.Millisecond

// PlayerOption configures a Player at construction time.
type PlayerOption func(*Player)

// WithLogger routes the player's debug logging; by default it is discarded.
func WithLogger(log *slog.Logger) PlayerOption {
	return func(p *Player) {
		if log != nil {
			p.log = log
		}
	}
}

// Player replays step sequences one at a time on a fixed interval.
// At most one run is active; starting a new run cancels the previous one
// and discards its pending step. Safe for use from multiple goroutines.
type Player struct {
	interval time.Duration
	log      *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	idle   chan struct{} // closed when the current run's goroutine exits
}

// NewPlayer creates a Player with the given inter-step interval.
// Non-positive intervals fall back to DefaultInterval.
func NewPlayer(interval time.Duration, opts ...PlayerOption) *Player {
	if interval <= 0 {
		interval = DefaultInterval
	}
	p := &Player{
		interval: interval,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Play starts replaying steps, invoking apply for each step in order with
// the configured delay between steps (the first step fires immediately).
// When the run completes without cancellation, done is invoked once, if
// non-nil. Any run already in progress is cancelled first and its pending
// step discarded.
func (p *Player) Play(steps []Step, apply func(Step), done func()) {
	p.mu.Lock()
	p.stopLocked()

	ctx, cancel := context.WithCancel(context.Background())
	idle := make(chan struct{})
	p.cancel = cancel
	p.idle = idle
	p.mu.Unlock()

	runID := uuid.NewString()[:8]
	p.log.Debug("animation run starting", "run", runID, "steps", len(steps), "interval", p.interval)

	go func() {
		defer close(idle)

		timer := time.NewTimer(0) // first step immediately
		defer timer.Stop()

		for i, step := range steps {
			select {
			case <-ctx.Done():
				p.log.Debug("animation run cancelled", "run", runID, "at_step", i)
				return
			case <-timer.C:
			}
			apply(step)
			timer.Reset(p.interval)
		}

		// let the last step linger for one interval before reporting done
		select {
		case <-ctx.Done():
			p.log.Debug("animation run cancelled", "run", runID, "at_step", len(steps))
			return
		case <-timer.C:
		}

		p.log.Debug("animation run finished", "run", runID)
		if done != nil {
			done()
		}
	}()
}

// Stop cancels the current run, if any, and waits for its goroutine to
// drain. Pending steps are discarded; done callbacks do not fire.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

// stopLocked cancels and waits for the active run. Caller holds p.mu; the
// run goroutine never takes the lock, so waiting here cannot deadlock.
func (p *Player) stopLocked() {
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.idle
	p.cancel = nil
	p.idle = nil
}

// Running reports whether a run is currently in flight.
func (p *Player) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.idle == nil {
		return false
	}
	select {
	case <-p.idle:
		return false
	default:
		return true
	}
}
