package walker

import (
	"math/rand/v2"

	"github.com/lxndio/random-walks/dp"
	"github.com/lxndio/random-walks/kernel"
	"github.com/lxndio/random-walks/walk"
)

// CorrelatedMultiStep reconstructs correlated walks over the (2M+1)² box
// of moves. Direction classes come from partitioning each axis of the
// box into directionsPerAxis sections: the class of a move (dx, dy) is
// section(dx) + section(dy)·directionsPerAxis, giving directionsPerAxis²
// classes. The pool and kernel family must carry that many variants.
type CorrelatedMultiStep struct {
	maxStepSize       int
	directionsPerAxis int
	kernels           []kernel.Kernel
	sections          []span
	src               rand.Source
	rng               *rand.Rand
}

// span is a half-open range [lo, hi) of axis offsets.
type span struct {
	lo, hi int
}

// NewCorrelatedMultiStep creates a multi-step correlated walker with
// step radius m and directionsPerAxis sections per axis. Returns
// dp.ErrDirectionMismatch unless one kernel per class is given.
func NewCorrelatedMultiStep(m, directionsPerAxis int, kernels []kernel.Kernel, src rand.Source) (*CorrelatedMultiStep, error) {
	if len(kernels) != directionsPerAxis*directionsPerAxis {
		return nil, dp.ErrDirectionMismatch
	}
	src = sourceOrDefault(src)

	return &CorrelatedMultiStep{
		maxStepSize:       m,
		directionsPerAxis: directionsPerAxis,
		kernels:           kernels,
		sections:          axisSections(m, directionsPerAxis),
		src:               src,
		rng:               rand.New(src),
	}, nil
}

// axisSections partitions [−m, +m] into n contiguous sections; a
// non-dividing remainder widens the middle section.
func axisSections(m, n int) []span {
	size := (2*m + 1) / n
	rem := (2*m + 1) % n

	out := make([]span, 0, n)
	lo := -m
	for i := 0; i < n; i++ {
		out = append(out, span{lo: lo, hi: lo + size})
		lo += size
	}
	if rem != 0 {
		mid := n / 2
		for i := mid; i < n; i++ {
			out[i].hi += rem
			if i > mid {
				out[i].lo += rem
			}
		}
	}

	return out
}

// section returns the index of the section containing the axis offset.
func (w *CorrelatedMultiStep) section(v int) int {
	for i, s := range w.sections {
		if v >= s.lo && v < s.hi {
			return i
		}
	}

	return len(w.sections) - 1
}

// class maps a move onto its direction class.
func (w *CorrelatedMultiStep) class(mov kernel.Offset) int {
	return w.section(mov.Dx) + w.section(mov.Dy)*w.directionsPerAxis
}

// GeneratePath samples one walk ending at (toX, toY) after timeSteps
// steps.
func (w *CorrelatedMultiStep) GeneratePath(pool *dp.Pool, toX, toY, timeSteps int) (walk.Walk, error) {
	if pool.Kind() == dp.KindSingle {
		return nil, dp.ErrRequiresMultiplePrograms
	}
	if pool.Len() != len(w.kernels) {
		return nil, dp.ErrDirectionMismatch
	}

	ok, err := anyVariantPositive(pool, toX, toY, timeSteps)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoPathExists
	}

	moves := boxMoves(w.maxStepSize)
	weights := make([]float64, len(moves))
	path := make(walk.Walk, 0, timeSteps+1)
	x, y := toX, toY

	path = append(path, walk.Point{X: x, Y: y})
	first := moves[w.rng.IntN(len(moves))]
	x += first.Dx
	y += first.Dy
	dLast := w.class(first)

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
		for i, mov := range moves {
			pPrev := v.AtOr(x+mov.Dx, y+mov.Dy, t-1, 0)
			weights[i] = k.At(-mov.Dx, -mov.Dy) * pPrev / pHere
		}

		idx, err := sampleIndex(w.src, weights)
		if err != nil {
			return nil, err
		}

		x += moves[idx].Dx
		y += moves[idx].Dy
		dLast = w.class(moves[idx])
	}

	path = append(path, walk.Point{X: x, Y: y})
	reverse(path)

	return path, nil
}

// GeneratePaths samples qty walks sequentially.
func (w *CorrelatedMultiStep) GeneratePaths(pool *dp.Pool, qty, toX, toY, timeSteps int) ([]walk.Walk, error) {
	return generatePaths(w, pool, qty, toX, toY, timeSteps)
}

// Name returns "cmsw" or "Correlated Multi Step Walker".
func (w *CorrelatedMultiStep) Name(short bool) string {
	if short {
		return "cmsw"
	}

	return "Correlated Multi Step Walker"
}
