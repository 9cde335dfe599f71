package walker

import (
	"math/rand/v2"

	"github.com/lxndio/random-walks/dp"
	"github.com/lxndio/random-walks/kernel"
	"github.com/lxndio/random-walks/walk"
)

// CorrelatedFixedStep reconstructs correlated walks whose every step has
// exactly L1 length S: candidates are the 4S cells of the L1 ring around
// the current site. The direction class of a step is its position in the
// ring's row-major enumeration, so the pool and kernel family must carry
// 4S variants in that order.
type CorrelatedFixedStep struct {
	stepSize int
	kernels  []kernel.Kernel
	moves    []kernel.Offset
	src      rand.Source
	rng      *rand.Rand
}

// NewCorrelatedFixedStep creates a fixed-step walker with step size s.
// Returns dp.ErrDirectionMismatch unless one kernel per ring cell is
// given.
func NewCorrelatedFixedStep(s int, kernels []kernel.Kernel, src rand.Source) (*CorrelatedFixedStep, error) {
	moves := ringMoves(s)
	if len(kernels) != len(moves) {
		return nil, dp.ErrDirectionMismatch
	}
	src = sourceOrDefault(src)

	return &CorrelatedFixedStep{
		stepSize: s,
		kernels:  kernels,
		moves:    moves,
		src:      src,
		rng:      rand.New(src),
	}, nil
}

// GeneratePath samples one walk ending at (toX, toY) after timeSteps
// steps.
func (w *CorrelatedFixedStep) GeneratePath(pool *dp.Pool, toX, toY, timeSteps int) (walk.Walk, error) {
	if pool.Kind() == dp.KindSingle {
		return nil, dp.ErrRequiresMultiplePrograms
	}
	if pool.Len() != len(w.moves) {
		return nil, dp.ErrDirectionMismatch
	}

	ok, err := anyVariantPositive(pool, toX, toY, timeSteps)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoPathExists
	}

	weights := make([]float64, len(w.moves))
	path := make(walk.Walk, 0, timeSteps+1)
	x, y := toX, toY

	path = append(path, walk.Point{X: x, Y: y})
	dLast := w.rng.IntN(len(w.moves))
	x += w.moves[dLast].Dx
	y += w.moves[dLast].Dy

	for t := timeSteps - 1; t >= 1; t-- {
		path = append(path, walk.Point{X: x, Y: y})

		v, err := pool.Variant(dLast)
		if err != nil {
			return nil, err
		}

		pHere := v.AtOr(x, y, t, 0)
		if pHere == 0 {
			return nil, ErrInconsistentPath
		}

		k := w.kernels[dLast]
		for i, mov := range w.moves {
			pPrev := v.AtOr(x+mov.Dx, y+mov.Dy, t-1, 0)
			weights[i] = k.At(-mov.Dx, -mov.Dy) * pPrev / pHere
		}

		idx, err := sampleIndex(w.src, weights)
		if err != nil {
			return nil, err
		}

		dLast = idx
		x += w.moves[idx].Dx
		y += w.moves[idx].Dy
	}

	path = append(path, walk.Point{X: x, Y: y})
	reverse(path)

	return path, nil
}

// GeneratePaths samples qty walks sequentially.
func (w *CorrelatedFixedStep) GeneratePaths(pool *dp.Pool, qty, toX, toY, timeSteps int) ([]walk.Walk, error) {
	return generatePaths(w, pool, qty, toX, toY, timeSteps)
}

// Name returns "cfsw" or "Correlated Fixed Step Walker".
func (w *CorrelatedFixedStep) Name(short bool) string {
	if short {
		return "cfsw"
	}

	return "Correlated Fixed Step Walker"
}
