package dp_test

import (
	"fmt"

	"github.com/lxndio/random-walks/dp"
	"github.com/lxndio/random-walks/kernel"
	"github.com/lxndio/random-walks/walk"
)

// ExampleBuilder builds and computes a scalar program with a barrier,
// then reads a few cells back.
func ExampleBuilder() {
	k, _ := kernel.FromGenerator(kernel.SimpleGenerator{})

	pool, err := dp.NewBuilder().
		Simple().
		TimeLimit(10).
		Kernel(k).
		AddBarrier(walk.XY(5, 0)).
		Build()
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}
	_ = pool.Compute()

	prog, _ := pool.Single()
	fmt.Println("origin mass:", prog.At(0, 0, 0))
	fmt.Println("one step east:", prog.At(1, 0, 1))
	fmt.Println("barrier site:", prog.At(5, 0, 10))
	// Output:
	// origin mass: 1
	// one step east: 0.2
	// barrier site: 0
}

// ExampleBuilder_correlated builds a directional program from the
// correlated kernel family.
func ExampleBuilder_correlated() {
	ks, _ := kernel.MultipleFromGenerator(kernel.CorrelatedGenerator{Persistence: 0.5})

	pool, err := dp.NewBuilder().
		Correlated().
		TimeLimit(10).
		Family(ks).
		DirKernel(kernel.FiveNeighborhood()).
		Build()
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}
	_ = pool.Compute()

	prog, _ := pool.Correlated()
	fmt.Println("classes:", prog.NumDirections())
	fmt.Println("origin mass:", prog.At(0, 0, dp.DInit, 0))
	// Output:
	// classes: 5
	// origin mass: 1
}
