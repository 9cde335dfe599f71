package walker

import (
	"math/rand/v2"

	"github.com/lxndio/random-walks/dp"
	"github.com/lxndio/random-walks/kernel"
	"github.com/lxndio/random-walks/walk"
)

// Standard reconstructs walks over the 5-neighbourhood stencil from a
// single scalar program. The kernel must be the one the program was
// computed with.
type Standard struct {
	kernel kernel.Kernel
	src    rand.Source
}

// NewStandard creates a standard walker. A nil source is replaced by a
// freshly seeded one; pass an explicit source for reproducible walks.
func NewStandard(k kernel.Kernel, src rand.Source) *Standard {
	return &Standard{kernel: k, src: sourceOrDefault(src)}
}

// GeneratePath samples one walk ending at (toX, toY) after timeSteps
// steps.
func (w *Standard) GeneratePath(pool *dp.Pool, toX, toY, timeSteps int) (walk.Walk, error) {
	prog, err := pool.Single()
	if err != nil {
		return nil, err
	}

	if prog.AtOr(toX, toY, timeSteps, 0) == 0 {
		return nil, ErrNoPathExists
	}

	moves := fiveNeighborhood()
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
func (w *Standard) GeneratePaths(pool *dp.Pool, qty, toX, toY, timeSteps int) ([]walk.Walk, error) {
	return generatePaths(w, pool, qty, toX, toY, timeSteps)
}

// Name returns "swg" or "Standard Walker".
func (w *Standard) Name(short bool) string {
	if short {
		return "swg"
	}

	return "Standard Walker"
}
