// Package walker reconstructs random walks from computed dynamic
// programs by backward sampling.
//
// Starting at the target site at the final time step, a walker repeatedly
// draws a predecessor from the discrete distribution proportional to
//
//	kernel(move) · P(predecessor, t−1) / P(here, t)
//
// until it reaches time 0, then reverses the collected points so the walk
// reads forward in time. A walk over T time steps has T+1 points, starts
// at the origin and ends at the requested target.
//
// Six walkers share the Walker contract:
//
//	Standard             — 5-neighbourhood moves on a single program
//	MultiStep            — all moves within an M-radius box
//	LandCover            — per-site step radius selected by field label
//	Correlated           — 5-neighbourhood with per-direction programs
//	CorrelatedFixedStep  — exactly step size S on the L1 ring
//	CorrelatedMultiStep  — M-box moves with an axis-partitioned class map
//
// Walkers are deterministic given their random source, the program and
// the target; GeneratePaths is a sequential loop over one source.
// Callers wanting parallel generation run several walkers, each with its
// own source.
package walker
