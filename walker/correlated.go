package walker

import (
	"math/rand/v2"

	"github.com/lxndio/random-walks/dp"
	"github.com/lxndio/random-walks/kernel"
	"github.com/lxndio/random-walks/walk"
)

// Correlated reconstructs walks whose step distribution depends on the
// direction of the previous step. It requires a multi-variant pool with
// one program per direction class and the matching per-direction kernel
// family; direction classes map one-to-one onto the 5-neighbourhood
// moves in kernel.Direction order.
type Correlated struct {
	kernels []kernel.Kernel
	src     rand.Source
	rng     *rand.Rand
}

// NewCorrelated creates a correlated walker from a 5-kernel family.
// Returns dp.ErrDirectionMismatch for any other family size.
func NewCorrelated(kernels []kernel.Kernel, src rand.Source) (*Correlated, error) {
	if len(kernels) != kernel.NumDirections {
		return nil, dp.ErrDirectionMismatch
	}
	src = sourceOrDefault(src)

	return &Correlated{kernels: kernels, src: src, rng: rand.New(src)}, nil
}

// GeneratePath samples one walk ending at (toX, toY) after timeSteps
// steps.
func (w *Correlated) GeneratePath(pool *dp.Pool, toX, toY, timeSteps int) (walk.Walk, error) {
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

	moves := fiveNeighborhood()
	weights := make([]float64, len(moves))
	path := make(walk.Walk, 0, timeSteps+1)
	x, y := toX, toY

	// The first reverse step has no later step to condition on; draw it
	// uniformly. The chosen move index is also the direction class.
	path = append(path, walk.Point{X: x, Y: y})
	dLast := w.rng.IntN(len(moves))
	x += moves[dLast].Dx
	y += moves[dLast].Dy

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

		dLast = idx
		x += moves[idx].Dx
		y += moves[idx].Dy
	}

	path = append(path, walk.Point{X: x, Y: y})
	reverse(path)

	return path, nil
}

// GeneratePaths samples qty walks sequentially.
func (w *Correlated) GeneratePaths(pool *dp.Pool, qty, toX, toY, timeSteps int) ([]walk.Walk, error) {
	return generatePaths(w, pool, qty, toX, toY, timeSteps)
}

// Name returns "cwg" or "Correlated Walker".
func (w *Correlated) Name(short bool) string {
	if short {
		return "cwg"
	}

	return "Correlated Walker"
}

// anyVariantPositive reports whether any direction class carries mass at
// the endpoint.
func anyVariantPositive(pool *dp.Pool, toX, toY, timeSteps int) (bool, error) {
	for i := 0; i < pool.Len(); i++ {
		v, err := pool.Variant(i)
		if err != nil {
			return false, err
		}
		if v.AtOr(toX, toY, timeSteps, 0) != 0 {
			return true, nil
		}
	}

	return false, nil
}
