package walker

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/sampleuv"
)

// sampleIndex draws one index from the categorical distribution given by
// weights. All-zero weights yield ErrInconsistentPath; non-finite or
// negative weights yield ErrRandomDistribution.
func sampleIndex(src rand.Source, weights []float64) (int, error) {
	for _, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return 0, ErrRandomDistribution
		}
	}

	idx, ok := sampleuv.NewWeighted(weights, src).Take()
	if !ok {
		return 0, ErrInconsistentPath
	}

	return idx, nil
}
