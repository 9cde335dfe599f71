// Package kernel provides transition kernels for lattice random walks.
//
// A Kernel is a small odd-sized square stencil of non-negative weights
// centred on (0, 0): At(dx, dy) is the weight of a move by (dx, dy) with
// dx, dy ∈ [−k, +k] for size 2k+1, and zero outside that range. Weights
// are not required to sum to one at construction; normalisation is the
// responsibility of the generator that fills the kernel.
//
// Kernels are produced by generators implementing the Generator contract:
//
//	k, err := kernel.FromGenerator(kernel.SimpleGenerator{})
//	ks, err := kernel.MultipleFromGenerator(kernel.CorrelatedGenerator{Persistence: 0.5})
//
// Generators include the uniform 5-neighbourhood walk, a biased walk with
// extra mass in one cardinal direction, bivariate-Gaussian kernels sampled
// at integer offsets, their half-masked variants, and a correlated family
// producing one kernel per incoming direction class.
//
// The coordinate convention places north at y−1 and south at y+1.
package kernel
