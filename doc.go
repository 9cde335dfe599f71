// Package randomwalks generates constrained two-dimensional random walks
// on an integer lattice.
//
// A walk starts at the origin, ends at a chosen lattice point and takes a
// fixed number of discrete time steps. Each step is drawn from a family of
// per-step transition kernels which may vary with spatial position (field
// types / land cover), with the direction of the previous step (correlated
// walks), or with the allowed step size.
//
// The library is organized into small focused packages:
//
//	grid/    — dense generic 2-D buffers backing all tables
//	kernel/  — transition kernels and their generators
//	field/   — per-site field-type labels, rectangles and barriers
//	dp/      — dynamic programs: forward passes, builder, pool, on-disk stores
//	walk/    — the Walk value type, transforms and similarity metrics
//	walker/  — back-samplers reconstructing walks from a computed program
//
// The usual flow: build a dynamic program with dp.NewBuilder, compute it,
// then hand the resulting pool to a walker:
//
//	k, _ := kernel.FromGenerator(kernel.SimpleGenerator{})
//
//	pool, err := dp.NewBuilder().
//	    Simple().
//	    TimeLimit(400).
//	    Kernel(k).
//	    Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pool.Compute()
//
//	w := walker.NewStandard(k, rand.NewPCG(1, 2))
//	path, err := w.GeneratePath(pool, 100, 0, 400)
//
// All probability tables hold unnormalised path masses; walkers turn them
// into conditional step distributions during backward reconstruction.
package randomwalks
