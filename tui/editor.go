package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/campusnav/anim"
	"github.com/katalvlaran/campusnav/bfs"
	"github.com/katalvlaran/campusnav/config"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dfs"
	"github.com/katalvlaran/campusnav/hittest"
)

// Editor is the interactive campus editor. All state mutation happens on
// the event loop; the animation player only posts events back into it.
type Editor struct {
	screen tcell.Screen
	graph  *core.Graph
	cfg    config.Config
	log    *slog.Logger
	player *anim.Player

	mode           Mode
	accessibleOnly bool
	connectFirst   string    // first endpoint picked in connect mode
	selectedEdge   [2]string // endpoints of the selected edge, empty if none
	status         string
	prompt         *prompt
	render         *renderState

	lastButtons tcell.ButtonMask // for click (press-edge) detection
}

// NewEditor wires an Editor onto an initialized screen. The logger may be
// nil, in which case logging is discarded.
func NewEditor(screen tcell.Screen, g *core.Graph, cfg config.Config, log *slog.Logger) *Editor {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Editor{
		screen: screen,
		graph:  g,
		cfg:    cfg,
		log:    log,
		player: anim.NewPlayer(cfg.AnimationDelay(), anim.WithLogger(log)),
		status: "left-click the canvas to place a building; press ? for keys",
		render: newRenderState(),
	}
}

// Run creates and initializes a real terminal screen, then drives the
// editor until the user quits.
func Run(g *core.Graph, cfg config.Config, log *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tui: create screen: %w", err)
	}
	if err = screen.Init(); err != nil {
		return fmt.Errorf("tui: init screen: %w", err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	ed := NewEditor(screen, g, cfg, log)

	return ed.Loop()
}

// Loop polls events until Quit. Exported separately from Run so tests can
// drive HandleEvent directly against a simulation screen.
func (ed *Editor) Loop() error {
	ed.draw()
	for {
		ev := ed.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !ed.HandleEvent(ev) {
			ed.player.Stop()
			return nil
		}
		ed.draw()
	}
}

// HandleEvent processes one event and reports whether the loop continues.
func (ed *Editor) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		ed.screen.Sync()
	case *tcell.EventKey:
		return ed.handleKey(e)
	case *tcell.EventMouse:
		ed.handleMouse(e)
	case *stepEvent:
		ed.applyStep(e.step)
	case *animDoneEvent:
		ed.status = e.summary
	}

	return true
}

// handleKey dispatches keyboard input; returns false to quit.
func (ed *Editor) handleKey(ev *tcell.EventKey) bool {
	if ed.handlePromptKey(ev) {
		return true
	}

	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		ed.setMode(ModeNormal)
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'c':
		if ed.mode == ModeConnect {
			ed.setMode(ModeNormal)
		} else {
			ed.setMode(ModeConnect)
		}
	case 'e':
		if ed.mode == ModeEdgeSelect {
			ed.setMode(ModeNormal)
		} else {
			ed.setMode(ModeEdgeSelect)
		}
	case 'a':
		ed.accessibleOnly = !ed.accessibleOnly
		ed.status = fmt.Sprintf("accessible-only mode %s", onOff(ed.accessibleOnly))
	case 'r':
		ed.randomizeWeights()
	case 'b':
		ed.startSearchPrompt("BFS")
	case 'd':
		ed.startSearchPrompt("DFS")
	case 'o':
		ed.toggleSelected(ed.graph.ToggleClosed, "closed")
	case 'x':
		ed.toggleSelected(ed.graph.ToggleAccessible, "accessible")
	case 'u':
		ed.disconnectSelected()
	case '?':
		ed.status = "c connect | e edge-select | a accessible-only | r randomize | b BFS | d DFS | o/x/u edge ops | q quit"
	}

	return true
}

// handleMouse turns button press edges into clicks and routes them by mode.
func (ed *Editor) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons &^ ed.lastButtons
	ed.lastButtons = buttons
	if pressed == 0 || ed.prompt != nil {
		return
	}

	x, y := ev.Position()
	switch {
	case pressed&tcell.ButtonPrimary != 0:
		ed.leftClick(x, y)
	case pressed&tcell.ButtonSecondary != 0:
		ed.rightClick(x, y)
	}
}

// leftClick: the workhorse — placement, endpoint picking, edge selection.
func (ed *Editor) leftClick(x, y int) {
	switch ed.mode {
	case ModeConnect:
		name, ok := ed.nodeAt(x, y)
		if !ok {
			ed.status = "connect mode: click on existing buildings"
			return
		}
		ed.pickEndpoint(name)
	case ModeEdgeSelect:
		e, ok := hittest.EdgeAt(ed.graph, float64(x), float64(y),
			hittest.WithEdgeThreshold(ed.cfg.EdgeThreshold))
		if !ok {
			ed.clearSelection()
			ed.status = "no walkway near that point"
			return
		}
		ed.selectedEdge = [2]string{e.A, e.B}
		ed.status = describeEdge(e)
	default:
		if name, ok := ed.nodeAt(x, y); ok {
			n, _ := ed.graph.Node(name)
			ed.status = fmt.Sprintf("%s at (%.0f, %.0f), %d walkways", n.Name, n.X, n.Y, ed.graph.Degree(name))
			return
		}
		ed.promptNewNode(x, y)
	}
}

// rightClick: quick operations — remove a building or toggle a walkway.
func (ed *Editor) rightClick(x, y int) {
	if name, ok := ed.nodeAt(x, y); ok {
		ed.graph.RemoveNode(name)
		ed.clearSelection()
		ed.render.reset()
		ed.status = fmt.Sprintf("removed %q and its walkways", name)
		ed.log.Info("node removed", "name", name)
		return
	}

	e, ok := hittest.EdgeAt(ed.graph, float64(x), float64(y),
		hittest.WithEdgeThreshold(ed.cfg.EdgeThreshold))
	if !ok {
		return
	}
	closed, err := ed.graph.ToggleClosed(e.A, e.B)
	if err != nil {
		ed.status = err.Error()
		return
	}
	ed.status = fmt.Sprintf("%s–%s is now %s", e.A, e.B, openClosed(closed))
}

// nodeAt resolves a click to a building, first by position radius, then by
// the label boxes recorded in the render side table.
func (ed *Editor) nodeAt(x, y int) (string, bool) {
	if name, ok := hittest.NodeAt(ed.graph, float64(x), float64(y),
		hittest.WithNodeRadius(ed.cfg.NodeRadius)); ok {
		return name, true
	}
	for name, box := range ed.render.labels {
		if box.contains(x, y) {
			return name, true
		}
	}

	return "", false
}

// promptNewNode collects a name and places a building at the click point.
// The prompt trims and rejects empty names; duplicate detection belongs to
// the model.
func (ed *Editor) promptNewNode(x, y int) {
	ed.startPrompt("Building name:", func(value string) {
		name := strings.TrimSpace(value)
		if name == "" {
			ed.status = "building name cannot be empty"
			return
		}
		if err := ed.graph.AddNode(name, float64(x), float64(y)); err != nil {
			ed.status = fmt.Sprintf("cannot add %q: %v", name, err)
			return
		}
		ed.status = fmt.Sprintf("added %q at (%d, %d)", name, x, y)
		ed.log.Info("node added", "name", name, "x", x, "y", y)
	})
}

// pickEndpoint records connect-mode endpoint clicks and, on the second
// pick, starts the attribute prompt chain.
func (ed *Editor) pickEndpoint(name string) {
	if ed.connectFirst == "" {
		ed.connectFirst = name
		ed.status = fmt.Sprintf("first endpoint: %s — click the second", name)
		return
	}
	a, b := ed.connectFirst, name
	ed.connectFirst = ""
	if a == b {
		ed.status = "cannot connect a building to itself"
		return
	}
	ed.promptConnect(a, b)
}

// promptConnect chains distance → time → accessibility, then connects.
func (ed *Editor) promptConnect(a, b string) {
	ed.startPrompt(fmt.Sprintf("%s–%s distance:", a, b), func(distStr string) {
		distance, err := parsePositive(distStr)
		if err != nil {
			ed.status = "distance must be a positive number"
			return
		}
		ed.startPrompt(fmt.Sprintf("%s–%s time:", a, b), func(timeStr string) {
			travel, err := parsePositive(timeStr)
			if err != nil {
				ed.status = "time must be a positive number"
				return
			}
			ed.startPrompt("Accessible? (y/n):", func(accStr string) {
				accessible := !strings.EqualFold(strings.TrimSpace(accStr), "n")
				if err := ed.graph.Connect(a, b, distance, travel, accessible); err != nil {
					ed.status = fmt.Sprintf("cannot connect %s–%s: %v", a, b, err)
					return
				}
				ed.status = fmt.Sprintf("connected %s–%s (dist %.4g, time %.4g)", a, b, distance, travel)
				ed.log.Info("edge connected", "a", a, "b", b, "distance", distance, "time", travel, "accessible", accessible)
			})
		})
	})
}

// randomizeWeights redraws all weights within the configured range.
func (ed *Editor) randomizeWeights() {
	if ed.graph.EdgeCount() == 0 {
		ed.status = "no walkways to randomize"
		return
	}
	if err := ed.graph.RandomizeWeights(ed.cfg.MinWeight, ed.cfg.MaxWeight); err != nil {
		ed.status = err.Error()
		return
	}
	ed.status = fmt.Sprintf("randomized all weights in [%d, %d]", ed.cfg.MinWeight, ed.cfg.MaxWeight)
}

// toggleSelected flips a flag on the selected edge via the given mutator.
func (ed *Editor) toggleSelected(toggle func(a, b string) (bool, error), what string) {
	if ed.mode != ModeEdgeSelect || ed.selectedEdge[0] == "" {
		ed.status = "select a walkway first (press e, then click one)"
		return
	}
	a, b := ed.selectedEdge[0], ed.selectedEdge[1]
	value, err := toggle(a, b)
	if err != nil {
		ed.clearSelection()
		ed.status = fmt.Sprintf("selected walkway no longer exists: %v", err)
		return
	}
	ed.status = fmt.Sprintf("%s–%s %s = %t", a, b, what, value)
}

// disconnectSelected removes the selected edge.
func (ed *Editor) disconnectSelected() {
	if ed.mode != ModeEdgeSelect || ed.selectedEdge[0] == "" {
		ed.status = "select a walkway first (press e, then click one)"
		return
	}
	a, b := ed.selectedEdge[0], ed.selectedEdge[1]
	ed.graph.Disconnect(a, b)
	ed.clearSelection()
	ed.status = fmt.Sprintf("disconnected %s–%s", a, b)
}

// startSearchPrompt chains start → goal prompts, then runs the search.
func (ed *Editor) startSearchPrompt(alg string) {
	ed.startPrompt(alg+" start building:", func(startStr string) {
		start := strings.TrimSpace(startStr)
		ed.startPrompt(alg+" goal building:", func(goalStr string) {
			goal := strings.TrimSpace(goalStr)
			ed.runSearch(alg, start, goal)
		})
	})
}

// runSearch executes the chosen algorithm and starts the replay. Closed
// edges are never traversable from the editor; accessible-only follows the
// toggle.
func (ed *Editor) runSearch(alg, start, goal string) {
	if !ed.graph.HasNode(start) {
		ed.status = fmt.Sprintf("start building %q does not exist", start)
		return
	}
	if !ed.graph.HasNode(goal) {
		ed.status = fmt.Sprintf("goal building %q does not exist", goal)
		return
	}

	filter := core.Filter{AccessibleOnly: ed.accessibleOnly}
	var (
		path  []string
		order []string
		err   error
	)
	if alg == "DFS" {
		var res *dfs.Result
		res, err = dfs.Search(ed.graph, start, goal, dfs.WithFilter(filter))
		if err == nil {
			path, order = res.Path, res.Order
		}
	} else {
		var res *bfs.Result
		res, err = bfs.Search(ed.graph, start, goal, bfs.WithFilter(filter))
		if err == nil {
			path, order = res.Path, res.Order
		}
	}
	if err != nil {
		ed.status = fmt.Sprintf("%s failed: %v", alg, err)
		return
	}
	ed.log.Info("search finished", "alg", alg, "start", start, "goal", goal, "found", path != nil, "expanded", len(order))

	if path == nil {
		ed.render.reset()
		ed.status = fmt.Sprintf("%s: no route from %s to %s with current settings", alg, start, goal)
		return
	}

	ed.status = fmt.Sprintf("%s found a route with %d hops — replaying", alg, len(path)-1)
	ed.animate(alg, path, order)
}

// animate clears old highlights and replays the traversal. Player.Play
// cancels any replay still in flight, so stale steps never reach the queue
// after this point.
func (ed *Editor) animate(alg string, path, order []string) {
	ed.render.reset()
	steps := anim.BuildSteps(order, path)
	summary := fmt.Sprintf("%s route: %s (%d hops) — visited %s",
		alg, strings.Join(path, " → "), len(path)-1, strings.Join(order, ", "))

	screen := ed.screen
	ed.player.Play(steps,
		func(s anim.Step) {
			screen.PostEventWait(&stepEvent{at: time.Now(), step: s})
		},
		func() {
			screen.PostEventWait(&animDoneEvent{at: time.Now(), summary: summary})
		})
}

// applyStep paints one replay step into the side table.
func (ed *Editor) applyStep(s anim.Step) {
	switch s.Kind {
	case anim.StepVisit:
		ed.render.visited[s.Node] = true
	case anim.StepPathEdge:
		ed.render.pathEdges[edgeKey(s.A, s.B)] = true
		ed.render.pathNodes[s.A] = true
		ed.render.pathNodes[s.B] = true
	}
}

// setMode switches input modes, clearing per-mode transient state.
func (ed *Editor) setMode(m Mode) {
	ed.mode = m
	ed.connectFirst = ""
	ed.cancelPrompt()
	if m != ModeEdgeSelect {
		ed.clearSelection()
	}
	switch m {
	case ModeConnect:
		ed.status = "connect mode: click two buildings"
	case ModeEdgeSelect:
		ed.status = "edge-select mode: click near a walkway"
	default:
		ed.status = "left-click the canvas to place a building"
	}
}

func (ed *Editor) clearSelection() {
	ed.selectedEdge = [2]string{}
}

// parsePositive parses a strictly positive real number.
func parsePositive(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("tui: value %v is not positive", v)
	}

	return v, nil
}

func describeEdge(e core.Edge) string {
	return fmt.Sprintf("%s–%s | dist=%.4g time=%.4g acc=%s closed=%s",
		e.A, e.B, e.Distance, e.Time, yesNo(e.Accessible), yesNo(e.Closed))
}

func yesNo(v bool) string {
	if v {
		return "Y"
	}

	return "N"
}

func onOff(v bool) string {
	if v {
		return "ON"
	}

	return "OFF"
}

func openClosed(closed bool) string {
	if closed {
		return "CLOSED"
	}

	return "OPEN"
}
