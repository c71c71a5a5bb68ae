package anim_test

import (
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/campusnav/anim"
)

func TestBuildSteps(t *testing.T) {
	steps := anim.BuildSteps([]string{"X", "Y", "Z"}, []string{"X", "Y", "Z"})
	want := []anim.Step{
		{Kind: anim.StepVisit, Node: "X"},
		{Kind: anim.StepVisit, Node: "Y"},
		{Kind: anim.StepVisit, Node: "Z"},
		{Kind: anim.StepPathEdge, A: "X", B: "Y"},
		{Kind: anim.StepPathEdge, A: "Y", B: "Z"},
	}
	if !reflect.DeepEqual(steps, want) {
		t.Errorf("BuildSteps = %v; want %v", steps, want)
	}
}

func TestBuildSteps_NoPath(t *testing.T) {
	steps := anim.BuildSteps([]string{"X", "Y"}, nil)
	want := []anim.Step{
		{Kind: anim.StepVisit, Node: "X"},
		{Kind: anim.StepVisit, Node: "Y"},
	}
	if !reflect.DeepEqual(steps, want) {
		t.Errorf("BuildSteps no-path = %v; want %v", steps, want)
	}
}

func TestBuildSteps_SingleNodePath(t *testing.T) {
	steps := anim.BuildSteps([]string{"X"}, []string{"X"})
	if len(steps) != 1 || steps[0].Kind != anim.StepVisit {
		t.Errorf("single-node path should yield one visit step, got %v", steps)
	}
}

// collector gathers applied steps under a lock, since apply runs on the
// player's goroutine.
type collector struct {
	mu    sync.Mutex
	steps []anim.Step
	done  bool
}

func (c *collector) apply(s anim.Step) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.steps = append(c.steps, s)
}

func (c *collector) markDone() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.done = true
}

func (c *collector) snapshot() ([]anim.Step, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]anim.Step(nil), c.steps...), c.done
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, d time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestPlayer_PlaysAllStepsInOrder(t *testing.T) {
	steps := anim.BuildSteps([]string{"A", "B"}, []string{"A", "B"})
	c := &collector{}
	p := anim.NewPlayer(time.Millisecond)

	p.Play(steps, c.apply, c.markDone)
	waitFor(t, 5*time.Second, func() bool { _, done := c.snapshot(); return done })

	got, _ := c.snapshot()
	if !reflect.DeepEqual(got, steps) {
		t.Errorf("applied %v; want %v", got, steps)
	}
	if p.Running() {
		t.Error("player still running after done")
	}
}

func TestPlayer_RestartCancelsPreviousRun(t *testing.T) {
	// a long first run that cannot finish before the second starts
	long := make([]anim.Step, 1000)
	for i := range long {
		long[i] = anim.Step{Kind: anim.StepVisit, Node: "old"}
	}
	first := &collector{}
	second := &collector{}
	p := anim.NewPlayer(50 * time.Millisecond)

	p.Play(long, first.apply, first.markDone)
	waitFor(t, 5*time.Second, func() bool { s, _ := first.snapshot(); return len(s) > 0 })

	// Play returns only after the first run's goroutine has drained, so no
	// stale step can land after this call.
	p.Play([]anim.Step{{Kind: anim.StepVisit, Node: "new"}}, second.apply, second.markDone)
	staleCount, _ := first.snapshot()

	waitFor(t, 5*time.Second, func() bool { _, done := second.snapshot(); return done })

	gotFirst, doneFirst := first.snapshot()
	if doneFirst {
		t.Error("cancelled run must not report done")
	}
	if len(gotFirst) != len(staleCount) {
		t.Errorf("stale run applied %d steps after cancellation", len(gotFirst)-len(staleCount))
	}
	gotSecond, _ := second.snapshot()
	if len(gotSecond) != 1 || gotSecond[0].Node != "new" {
		t.Errorf("second run applied %v; want the single new step", gotSecond)
	}
}

func TestPlayer_Stop(t *testing.T) {
	long := make([]anim.Step, 1000)
	for i := range long {
		long[i] = anim.Step{Kind: anim.StepVisit, Node: "n"}
	}
	c := &collector{}
	p := anim.NewPlayer(50 * time.Millisecond)

	p.Play(long, c.apply, c.markDone)
	waitFor(t, 5*time.Second, func() bool { s, _ := c.snapshot(); return len(s) > 0 })
	p.Stop()

	if p.Running() {
		t.Error("player reports running after Stop")
	}
	applied, done := c.snapshot()
	if done {
		t.Error("stopped run must not report done")
	}
	if len(applied) == 0 || len(applied) == len(long) {
		t.Errorf("expected a partial replay, got %d/%d steps", len(applied), len(long))
	}
}

func TestPlayer_StopWithoutRunIsNoop(t *testing.T) {
	p := anim.NewPlayer(time.Millisecond)
	p.Stop() // must not panic or block
	if p.Running() {
		t.Error("idle player reports running")
	}
}
