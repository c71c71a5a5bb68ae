package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/dfs"
)

// ExampleSearch shows that DFS returns a valid route, preferring the
// lexically smallest branch at each step.
func ExampleSearch() {
	g := core.NewGraph()
	for _, name := range []string{"Dorm", "Library", "Quad", "Gym"} {
		_ = g.AddNode(name, 0, 0)
	}
	_ = g.Connect("Dorm", "Quad", 5, 7, true)
	_ = g.Connect("Quad", "Gym", 3, 4, true)
	_ = g.Connect("Dorm", "Library", 2, 2, true)
	_ = g.Connect("Library", "Quad", 2, 2, true)

	res, err := dfs.Search(g, "Dorm", "Gym")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path)
	fmt.Println(res.Order)

	// Output:
	// [Dorm Library Quad Gym]
	// [Dorm Library Quad Gym]
}
