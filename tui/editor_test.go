package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/anim"
	"github.com/katalvlaran/campusnav/config"
	"github.com/katalvlaran/campusnav/core"
)

// newTestEditor wires an Editor onto an 80x24 simulation screen.
func newTestEditor(t *testing.T, g *core.Graph, cfg config.Config) *Editor {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	return NewEditor(screen, g, cfg, nil)
}

// click sends a press followed by a release, matching real terminal input.
func click(ed *Editor, x, y int, btn tcell.ButtonMask) {
	ed.HandleEvent(tcell.NewEventMouse(x, y, btn, tcell.ModNone))
	ed.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

// typeText feeds runes followed by Enter into the active prompt.
func typeText(ed *Editor, text string) {
	for _, r := range text {
		ed.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	ed.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
}

func pressRune(ed *Editor, r rune) bool {
	return ed.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func TestPlaceBuildingViaPrompt(t *testing.T) {
	g := core.NewGraph()
	ed := newTestEditor(t, g, config.Default())

	click(ed, 10, 5, tcell.ButtonPrimary)
	require.NotNil(t, ed.prompt, "empty-canvas click must open the name prompt")

	typeText(ed, "Library")

	n, ok := g.Node("Library")
	require.True(t, ok)
	assert.Equal(t, 10.0, n.X)
	assert.Equal(t, 5.0, n.Y)
	assert.Nil(t, ed.prompt)
}

func TestPlaceBuilding_EmptyNameRejected(t *testing.T) {
	g := core.NewGraph()
	ed := newTestEditor(t, g, config.Default())

	click(ed, 10, 5, tcell.ButtonPrimary)
	typeText(ed, "   ")

	assert.Equal(t, 0, g.NodeCount())
	assert.Contains(t, ed.status, "empty")
}

func TestPlaceBuilding_EscapeCancelsPrompt(t *testing.T) {
	g := core.NewGraph()
	ed := newTestEditor(t, g, config.Default())

	click(ed, 10, 5, tcell.ButtonPrimary)
	ed.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))

	assert.Nil(t, ed.prompt)
	assert.Equal(t, 0, g.NodeCount())
}

func TestClickExistingBuildingShowsDetails(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("Gym", 20, 8))
	ed := newTestEditor(t, g, config.Default())

	click(ed, 20, 8, tcell.ButtonPrimary)

	assert.Nil(t, ed.prompt, "clicking a building must not open the name prompt")
	assert.Contains(t, ed.status, "Gym")
}

func TestModeTogglesAndEscape(t *testing.T) {
	ed := newTestEditor(t, core.NewGraph(), config.Default())

	pressRune(ed, 'c')
	assert.Equal(t, ModeConnect, ed.mode)
	pressRune(ed, 'c')
	assert.Equal(t, ModeNormal, ed.mode)

	pressRune(ed, 'e')
	assert.Equal(t, ModeEdgeSelect, ed.mode)
	ed.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	assert.Equal(t, ModeNormal, ed.mode)
}

func TestConnectFlow(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("Dorm", 10, 5))
	require.NoError(t, g.AddNode("Quad", 60, 5))
	ed := newTestEditor(t, g, config.Default())

	pressRune(ed, 'c')
	click(ed, 10, 5, tcell.ButtonPrimary)
	assert.Equal(t, "Dorm", ed.connectFirst)

	click(ed, 60, 5, tcell.ButtonPrimary)
	require.NotNil(t, ed.prompt, "second endpoint must open the distance prompt")

	typeText(ed, "120")
	typeText(ed, "3")
	typeText(ed, "y")

	e, ok := g.GetEdge("Dorm", "Quad")
	require.True(t, ok)
	assert.Equal(t, 120.0, e.Distance)
	assert.Equal(t, 3.0, e.Time)
	assert.True(t, e.Accessible)
	assert.False(t, e.Closed)
}

func TestConnectFlow_NonAccessible(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("Dorm", 10, 5))
	require.NoError(t, g.AddNode("Quad", 60, 5))
	ed := newTestEditor(t, g, config.Default())

	pressRune(ed, 'c')
	click(ed, 10, 5, tcell.ButtonPrimary)
	click(ed, 60, 5, tcell.ButtonPrimary)
	typeText(ed, "50")
	typeText(ed, "2")
	typeText(ed, "n")

	e, ok := g.GetEdge("Dorm", "Quad")
	require.True(t, ok)
	assert.False(t, e.Accessible)
}

func TestConnectFlow_SelfEndpointRejected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("Dorm", 10, 5))
	ed := newTestEditor(t, g, config.Default())

	pressRune(ed, 'c')
	click(ed, 10, 5, tcell.ButtonPrimary)
	click(ed, 10, 5, tcell.ButtonPrimary)

	assert.Nil(t, ed.prompt)
	assert.Empty(t, ed.connectFirst)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestConnectFlow_BadDistanceAborts(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("Dorm", 10, 5))
	require.NoError(t, g.AddNode("Quad", 60, 5))
	ed := newTestEditor(t, g, config.Default())

	pressRune(ed, 'c')
	click(ed, 10, 5, tcell.ButtonPrimary)
	click(ed, 60, 5, tcell.ButtonPrimary)
	typeText(ed, "-4")

	assert.Equal(t, 0, g.EdgeCount())
	assert.Contains(t, ed.status, "positive")
}

func TestEdgeSelectAndToggles(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("Dorm", 10, 5))
	require.NoError(t, g.AddNode("Quad", 60, 5))
	require.NoError(t, g.Connect("Dorm", "Quad", 120, 3, true))
	ed := newTestEditor(t, g, config.Default())

	pressRune(ed, 'e')
	click(ed, 35, 5, tcell.ButtonPrimary) // on the segment midline
	require.Equal(t, [2]string{"Dorm", "Quad"}, ed.selectedEdge)

	pressRune(ed, 'o')
	e, _ := g.GetEdge("Dorm", "Quad")
	assert.True(t, e.Closed)

	pressRune(ed, 'x')
	e, _ = g.GetEdge("Dorm", "Quad")
	assert.False(t, e.Accessible)

	pressRune(ed, 'u')
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, [2]string{"", ""}, ed.selectedEdge)
}

func TestEdgeToggle_WithoutSelection(t *testing.T) {
	ed := newTestEditor(t, core.NewGraph(), config.Default())

	pressRune(ed, 'o')

	assert.Contains(t, ed.status, "select a walkway")
}

func TestRightClickRemovesBuilding(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("Dorm", 10, 5))
	require.NoError(t, g.AddNode("Quad", 60, 5))
	require.NoError(t, g.Connect("Dorm", "Quad", 120, 3, true))
	ed := newTestEditor(t, g, config.Default())

	click(ed, 10, 5, tcell.ButtonSecondary)

	assert.False(t, g.HasNode("Dorm"))
	assert.Equal(t, 0, g.EdgeCount(), "walkways must cascade")
}

func TestRightClickTogglesWalkwayClosed(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("Dorm", 10, 5))
	require.NoError(t, g.AddNode("Quad", 60, 5))
	require.NoError(t, g.Connect("Dorm", "Quad", 120, 3, true))
	ed := newTestEditor(t, g, config.Default())

	click(ed, 35, 5, tcell.ButtonSecondary)
	e, _ := g.GetEdge("Dorm", "Quad")
	assert.True(t, e.Closed)

	click(ed, 35, 5, tcell.ButtonSecondary)
	e, _ = g.GetEdge("Dorm", "Quad")
	assert.False(t, e.Closed)
}

func TestAccessibleOnlyToggle(t *testing.T) {
	ed := newTestEditor(t, core.NewGraph(), config.Default())

	pressRune(ed, 'a')
	assert.True(t, ed.accessibleOnly)
	pressRune(ed, 'a')
	assert.False(t, ed.accessibleOnly)
}

func TestSearchPrompt_UnknownStart(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("Dorm", 10, 5))
	ed := newTestEditor(t, g, config.Default())

	pressRune(ed, 'b')
	typeText(ed, "Nowhere")
	typeText(ed, "Dorm")

	assert.Contains(t, ed.status, "does not exist")
}

func TestSearch_NoRouteClearsHighlights(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("Dorm", 10, 5))
	require.NoError(t, g.AddNode("Quad", 60, 5))
	ed := newTestEditor(t, g, config.Default())
	ed.render.visited["Dorm"] = true

	pressRune(ed, 'b')
	typeText(ed, "Dorm")
	typeText(ed, "Quad")

	assert.Contains(t, ed.status, "no route")
	assert.Empty(t, ed.render.visited)
}

// A full replay: the player posts step events into the screen queue; pumping
// them through HandleEvent until the done event must paint every highlight.
func TestSearch_ReplayPaintsHighlights(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("Dorm", 10, 5))
	require.NoError(t, g.AddNode("Quad", 40, 5))
	require.NoError(t, g.AddNode("Gym", 70, 5))
	require.NoError(t, g.Connect("Dorm", "Quad", 100, 2, true))
	require.NoError(t, g.Connect("Quad", "Gym", 80, 2, true))

	cfg := config.Default()
	cfg.AnimationDelayMs = 1
	ed := newTestEditor(t, g, cfg)

	pressRune(ed, 'b')
	typeText(ed, "Dorm")
	typeText(ed, "Gym")

	for {
		ev := ed.screen.PollEvent()
		require.NotNil(t, ev)
		ed.HandleEvent(ev)
		if _, done := ev.(*animDoneEvent); done {
			break
		}
	}

	assert.True(t, ed.render.visited["Dorm"])
	assert.True(t, ed.render.visited["Quad"])
	assert.True(t, ed.render.visited["Gym"])
	assert.True(t, ed.render.pathEdges[edgeKey("Dorm", "Quad")])
	assert.True(t, ed.render.pathEdges[edgeKey("Quad", "Gym")])
	assert.True(t, ed.render.pathNodes["Gym"])
	assert.Contains(t, ed.status, "Dorm → Quad → Gym")
}

func TestStepEventsUpdateSideTables(t *testing.T) {
	ed := newTestEditor(t, core.NewGraph(), config.Default())

	ed.HandleEvent(&stepEvent{step: anim.Step{Kind: anim.StepVisit, Node: "Dorm"}})
	ed.HandleEvent(&stepEvent{step: anim.Step{Kind: anim.StepPathEdge, A: "Dorm", B: "Quad"}})
	ed.HandleEvent(&animDoneEvent{summary: "done"})

	assert.True(t, ed.render.visited["Dorm"])
	assert.True(t, ed.render.pathEdges[edgeKey("Dorm", "Quad")])
	assert.True(t, ed.render.pathNodes["Dorm"])
	assert.Equal(t, "done", ed.status)
}

func TestQuitKeys(t *testing.T) {
	ed := newTestEditor(t, core.NewGraph(), config.Default())

	assert.False(t, pressRune(ed, 'q'))
	assert.False(t, ed.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))
}

func TestDrawRecordsLabelBoxes(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("Library", 30, 10))
	ed := newTestEditor(t, g, config.Default())

	ed.draw()

	box, ok := ed.render.labels["Library"]
	require.True(t, ok)
	assert.Equal(t, len("[Library]"), box.w)
	assert.True(t, box.contains(30, 10), "label box must cover the node position")
}

func TestLabelBoxFallbackResolvesClick(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("Far", 30, 10))
	cfg := config.Default()
	cfg.NodeRadius = 1 // radius misses, only the drawn label can catch it
	ed := newTestEditor(t, g, cfg)
	ed.draw()

	name, ok := ed.nodeAt(32, 10)
	require.True(t, ok)
	assert.Equal(t, "Far", name)
}
