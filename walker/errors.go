package walker

import "errors"

// Runtime sentinel errors of backward sampling. Pool-arity mismatches
// surface as dp.ErrRequiresSingleProgram / dp.ErrRequiresMultiplePrograms.
var (
	// ErrNoPathExists indicates zero mass at the requested endpoint and
	// time: no walk of that length ends there.
	ErrNoPathExists = errors.New("walker: no path exists")
	// ErrInconsistentPath indicates that every candidate predecessor has
	// zero weight during reverse sampling — upstream data is inconsistent
	// or a barrier trapped the walker.
	ErrInconsistentPath = errors.New("walker: all candidate predecessors have zero weight")
	// ErrRandomDistribution indicates non-finite weights reaching the
	// categorical sampler.
	ErrRandomDistribution = errors.New("walker: invalid weights for random distribution")
	// ErrUnknownLandCover indicates a land-cover label without a kernel or
	// step size assigned to it.
	ErrUnknownLandCover = errors.New("walker: land cover label without kernel or step size")
)
