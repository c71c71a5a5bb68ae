package anim

// StepKind discriminates the presentation steps of a traversal replay.
type StepKind int

const (
	// StepVisit highlights a node in the order the search finalized it.
	StepVisit StepKind = iota

	// StepPathEdge colors one edge of the final path.
	StepPathEdge
)

// Step is a single presentation action. For StepVisit only Node is set;
// for StepPathEdge, A and B name the edge's endpoints.
type Step struct {
	Kind StepKind
	Node string
	A, B string
}

// BuildSteps converts a search outcome into its replay script: every
// visited node in order, followed by the final path edge by edge. A nil or
// single-node path contributes no edge steps, and a no-path result replays
// just the visit sequence.
func BuildSteps(order, path []string) []Step {
	steps := make([]Step, 0, len(order)+len(path))
	for _, name := range order {
		steps = append(steps, Step{Kind: StepVisit, Node: name})
	}
	for i := 0; i+1 < len(path); i++ {
		steps = append(steps, Step{Kind: StepPathEdge, A: path[i], B: path[i+1]})
	}

	return steps
}
