package walker

import (
	"math/rand/v2"

	"github.com/lxndio/random-walks/dp"
	"github.com/lxndio/random-walks/kernel"
	"github.com/lxndio/random-walks/walk"
)

// MultiStep reconstructs walks whose steps may span several cells at
// once: every move within the (2M+1)² box around the current site is a
// candidate. Pair it with a kernel whose support covers the box, e.g. a
// normal-distribution kernel.
type MultiStep struct {
	maxStepSize int
	kernel      kernel.Kernel
	src         rand.Source
}

// NewMultiStep creates a multi-step walker with maximum step radius m.
func NewMultiStep(m int, k kernel.Kernel, src rand.Source) *MultiStep {
	return &MultiStep{maxStepSize: m, kernel: k, src: sourceOrDefault(src)}
}

// GeneratePath samples one walk ending at (toX, toY) after timeSteps
// steps.
func (w *MultiStep) GeneratePath(pool *dp.Pool, toX, toY, timeSteps int) (walk.Walk, error) {
	prog, err := pool.Single()
	if err != nil {
		return nil, err
	}

	if prog.AtOr(toX, toY, timeSteps, 0) == 0 {
		return nil, ErrNoPathExists
	}

	moves := boxMoves(w.maxStepSize)
	weights := make([]float64, len(moves))
	path := make(walk.Walk, 0, timeSteps+1)
	x, y := toX, toY

	for t := timeSteps; t >= 1; t-- {
		path = append(path, walk.Point{X: x, Y: y})

		pHere := prog.AtOr(x, y, t, 0)
		if pHere == 0 {
			return nil, ErrInconsistentPath
		}

		for i, mov := range moves {
			pPrev := prog.AtOr(x+mov.Dx, y+mov.Dy, t-1, 0)
			weights[i] = w.kernel.At(-mov.Dx, -mov.Dy) * pPrev / pHere
		}

		idx, err := sampleIndex(w.src, weights)
		if err != nil {
			return nil, err
		}

		x += moves[idx].Dx
		y += moves[idx].Dy
	}

	path = append(path, walk.Point{X: x, Y: y})
	reverse(path)

	return path, nil
}

// GeneratePaths samples qty walks sequentially.
func (w *MultiStep) GeneratePaths(pool *dp.Pool, qty, toX, toY, timeSteps int) ([]walk.Walk, error) {
	return generatePaths(w, pool, qty, toX, toY, timeSteps)
}

// Name returns "msw" or "Multi Step Walker".
func (w *MultiStep) Name(short bool) string {
	if short {
		return "msw"
	}

	return "Multi Step Walker"
}
