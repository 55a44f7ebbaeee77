package nodelink_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/kgraph/pkg/matrix"
	"github.com/matzehuels/kgraph/pkg/render/nodelink"
	"github.com/matzehuels/kgraph/pkg/scene"
)

func ExampleToDOT() {
	w := matrix.Matrix{
		{0, 2, 0},
		{2, 0, 3},
		{0, 3, 0},
	}
	s, err := scene.Build(w, scene.Options{}, matrix.NewRand(42))
	if err != nil {
		fmt.Println(err)
		return
	}

	dot := nodelink.ToDOT(s, nodelink.Options{})
	fmt.Println(strings.Count(dot, " -- "), "edges")
	// Output:
	// 2 edges
}
