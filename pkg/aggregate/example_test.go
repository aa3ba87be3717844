package aggregate_test

import (
	"fmt"

	"github.com/matzehuels/dla/pkg/aggregate"
)

func ExampleNew() {
	e, _ := aggregate.New(3)

	fmt.Println("Seed:", e.Seed())
	fmt.Println("Cluster:", e.Cluster())
	fmt.Println("Perimeter:", e.Perimeter())
	fmt.Println("Grid:", e.Grid().Size(), "x", e.Grid().Size())
	// Output:
	// Seed: (3,3)
	// Cluster: [(3,3)]
	// Perimeter: [(3,2) (3,4) (2,3) (4,3)]
	// Grid: 7 x 7
}

func ExampleEngine_BuildRing() {
	e, _ := aggregate.New(1)
	if err := e.BuildRing(1); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(e.Ring())
	// Output: [(0,0) (0,1) (1,0) (1,1)]
}

func ExampleEngine_Walk() {
	e, _ := aggregate.New(8, aggregate.WithSeed(42))
	_ = e.BuildRing(8)

	for !e.Reached(0.25) {
		if _, err := e.Walk(); err != nil {
			fmt.Println(err)
			return
		}
	}
	fmt.Println("threshold passed:", e.Density() > 0.25)
	fmt.Println("grid matches cluster:", e.Grid().Count() == e.ClusterLen())
	// Output:
	// threshold passed: true
	// grid matches cluster: true
}
