// Package field provides the per-site field-type map of a dynamic program.
//
// A Map assigns a small non-negative integer label to every lattice site
// (x, y) with x, y ∈ [−T, +T] for a time limit T. The label selects which
// transition kernel governs moves into that site; barriers are modelled by
// a reserved label whose kernel is identically zero.
//
// Maps are frozen when a dynamic program is built; mutation happens only
// between construction and build time.
package field
