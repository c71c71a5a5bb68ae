package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/campusnav/core"
)

// draw repaints the whole screen: edges first, then labels, then nodes on
// top, then the chrome (legend, edge panel, prompt, status).
func (ed *Editor) draw() {
	ed.screen.Clear()
	w, h := ed.screen.Size()

	for name := range ed.render.labels {
		delete(ed.render.labels, name)
	}

	for _, e := range ed.graph.Edges() {
		ed.drawEdge(e)
	}
	for _, n := range ed.graph.Nodes() {
		ed.drawNode(n)
	}

	ed.drawLegend(w)
	ed.drawEdgePanel(w)
	ed.drawModeLine(w)
	ed.drawPromptAndStatus(w, h)

	ed.screen.Show()
}

// edgeStyle picks the color for an edge, final-path highlight first.
func (ed *Editor) edgeStyle(e core.Edge) tcell.Style {
	switch {
	case ed.render.pathEdges[edgeKey(e.A, e.B)]:
		return stylePath
	case ed.selectedEdge[0] == e.A && ed.selectedEdge[1] == e.B:
		return styleSelected
	case e.Closed:
		return styleClosed
	case !e.Accessible:
		return styleNonAccess
	default:
		return styleEdge
	}
}

// drawEdge renders the segment between the endpoint positions plus a
// midpoint weight label ("dist/time", with a trailing A marker when the
// walkway is not accessible).
func (ed *Editor) drawEdge(e core.Edge) {
	na, okA := ed.graph.Node(e.A)
	nb, okB := ed.graph.Node(e.B)
	if !okA || !okB {
		return
	}

	style := ed.edgeStyle(e)
	plotLine(ed.screen, int(na.X), int(na.Y), int(nb.X), int(nb.Y), style)

	label := fmt.Sprintf("%.4g/%.4g", e.Distance, e.Time)
	if !e.Accessible {
		label += " A"
	}
	mx := (int(na.X) + int(nb.X)) / 2
	my := (int(na.Y)+int(nb.Y))/2 - 1
	drawText(ed.screen, mx-len(label)/2, my, label, styleLabel)
}

// drawNode renders "[Name]" centered on the node position and records the
// box in the side table for label-click resolution.
func (ed *Editor) drawNode(n core.Node) {
	style := styleNode
	switch {
	case ed.render.pathNodes[n.Name]:
		style = stylePathNode
	case ed.render.visited[n.Name]:
		style = styleVisited
	}
	if ed.connectFirst == n.Name {
		style = styleSelected
	}

	label := "[" + n.Name + "]"
	x := int(n.X) - len(label)/2
	y := int(n.Y)
	drawText(ed.screen, x, y, label, style)
	ed.render.labels[n.Name] = rect{x: x, y: y, w: len(label), h: 1}
}

// drawLegend paints the color key in the top-right corner.
func (ed *Editor) drawLegend(w int) {
	entries := []struct {
		text  string
		style tcell.Style
	}{
		{"── path", stylePath},
		{"── closed", styleClosed},
		{"── no-access", styleNonAccess},
		{"── open", styleEdge},
		{"[ ] visited", styleVisited},
	}
	y := 0
	for _, entry := range entries {
		drawText(ed.screen, w-14, y, entry.text, entry.style)
		y++
	}
}

// drawEdgePanel shows the selected walkway, if any, under the legend.
func (ed *Editor) drawEdgePanel(w int) {
	if ed.selectedEdge[0] == "" {
		return
	}
	e, ok := ed.graph.GetEdge(ed.selectedEdge[0], ed.selectedEdge[1])
	if !ok {
		return
	}
	drawText(ed.screen, w-30, 6, "selected: "+describeEdge(e), styleHint)
	drawText(ed.screen, w-30, 7, "o close | x access | u remove", styleHint)
}

// drawModeLine shows the current mode and filter flags top-left.
func (ed *Editor) drawModeLine(w int) {
	line := fmt.Sprintf(" %s | accessible-only %s ", ed.mode, onOff(ed.accessibleOnly))
	drawText(ed.screen, 0, 0, line, styleHint)
}

// drawPromptAndStatus renders the prompt line (when active) above the
// reverse-video status bar on the bottom row.
func (ed *Editor) drawPromptAndStatus(w, h int) {
	if ed.prompt != nil {
		text := ed.prompt.label + " " + string(ed.prompt.buf) + "▏"
		drawText(ed.screen, 0, h-2, text, styleDefault.Bold(true))
	}
	status := ed.status
	if len(status) > w {
		status = status[:w]
	}
	for x := 0; x < w; x++ {
		ed.screen.SetContent(x, h-1, ' ', nil, styleStatus)
	}
	drawText(ed.screen, 0, h-1, status, styleStatus)
}

// drawText writes a string horizontally, clipping at screen bounds.
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	w, h := s.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range text {
		if x >= 0 && x < w {
			s.SetContent(x, y, r, nil, style)
		}
		x++
	}
}

// plotLine draws a Bresenham segment between two cells, picking a glyph by
// dominant direction.
func plotLine(s tcell.Screen, x0, y0, x1, y1 int, style tcell.Style) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	glyph := '·'
	switch {
	case dy == 0:
		glyph = '─'
	case dx == 0:
		glyph = '│'
	}

	err := dx + dy
	for {
		s.SetContent(x0, y0, glyph, nil, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
