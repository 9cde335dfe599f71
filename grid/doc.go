// Package grid provides a dense, row-major two-dimensional buffer used as
// the backing storage for probability tables and field-type maps.
//
// A Grid[T] stores width×height elements of any type in one flat slice for
// locality and cheap cloning. Indexing is zero-based; callers that work in
// centred lattice coordinates (x, y ∈ [−T, +T]) shift by their own offset
// before calling At/Set.
//
// Complexity:
//
//	– At/Set:       O(1)
//	– Fill/Clone:   O(W×H)
//	– FromRows:     O(W×H) (deep copy, shape validation)
package grid
