package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/campusnav/anim"
)

// Mode is the editor's input mode.
type Mode int

const (
	// ModeNormal places and inspects buildings.
	ModeNormal Mode = iota

	// ModeConnect picks two buildings and connects them.
	ModeConnect

	// ModeEdgeSelect picks a walkway for toggling or removal.
	ModeEdgeSelect
)

// String returns the mode's status-line label.
func (m Mode) String() string {
	switch m {
	case ModeConnect:
		return "CONNECT"
	case ModeEdgeSelect:
		return "EDGE-SELECT"
	default:
		return "NORMAL"
	}
}

// Edge state colors, matching the original legend: green final path, red
// closed, orange non-accessible, blue visited overlay.
var (
	styleDefault   = tcell.StyleDefault
	styleEdge      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleClosed    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleNonAccess = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	stylePath      = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleNode      = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	styleVisited   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue)
	stylePathNode  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	styleSelected  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleStatus    = tcell.StyleDefault.Reverse(true)
	styleHint      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleLabel     = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// rect is a drawn label's cell bounding box, kept in the render side table
// so clicks anywhere on a label resolve to its building.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// edgeKey is the canonical "A|B" form of an edge's endpoint pair, used as
// the side-table key for highlight state.
func edgeKey(a, b string) string {
	if b < a {
		a, b = b, a
	}

	return a + "|" + b
}

// renderState is the presentation side table: everything the animation and
// selection paint, keyed by node name or edge pair. The core entities never
// carry any of this.
type renderState struct {
	visited   map[string]bool // node name → visited overlay
	pathEdges map[string]bool // edgeKey → final-path highlight
	pathNodes map[string]bool // node name → final-path highlight
	labels    map[string]rect // node name → drawn label box
}

func newRenderState() *renderState {
	return &renderState{
		visited:   make(map[string]bool),
		pathEdges: make(map[string]bool),
		pathNodes: make(map[string]bool),
		labels:    make(map[string]rect),
	}
}

// reset clears all traversal highlights; label boxes are rebuilt each draw.
func (rs *renderState) reset() {
	rs.visited = make(map[string]bool)
	rs.pathEdges = make(map[string]bool)
	rs.pathNodes = make(map[string]bool)
}

// stepEvent carries one animation step into the tcell event queue so all
// drawing happens on the event loop.
type stepEvent struct {
	at   time.Time
	step anim.Step
}

// When implements tcell.Event.
func (e *stepEvent) When() time.Time { return e.at }

// animDoneEvent signals that a traversal replay ran to completion.
type animDoneEvent struct {
	at      time.Time
	summary string
}

// When implements tcell.Event.
func (e *animDoneEvent) When() time.Time { return e.at }
