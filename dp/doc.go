// Package dp computes the dynamic programs behind constrained random
// walks: for every lattice site (x, y) and time step t (and, for
// correlated walks, every incoming direction class d) the unnormalised
// mass of length-t paths from the origin ending there.
//
// # Types
//
// Two forward passes exist. Program is the scalar table P[t][x][y]
// driven by position-dependent kernels selected through a field-type
// map. CorrelatedProgram is the directional table P[t][d][x][y] driven
// by one kernel per incoming direction class and a kernel.DirKernel
// enumerating feasible predecessor cells.
//
// Programs are created through the Builder and wrapped in a Pool, whose
// three variants — a single in-memory program, many in-memory variants,
// or a lazily loaded on-disk vector — satisfy one accessor contract.
//
// # Example
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
// # Persistence
//
// Computed tables serialise to zstd-compressed little-endian streams,
// either one file per program (Save/Load), one lazily loaded file per
// variant (ComputeManySave/OpenDiskVec), or one file per time step for
// families too large for memory (SaveLayered/OpenLayered).
//
// Tables are cubic (scalar) or quartic (directional) in the time limit
// and dominate memory and CPU cost; the forward pass supports tiled
// per-layer parallelism that is bit-identical to the serial pass.
package dp
