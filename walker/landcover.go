package walker

import (
	"math/rand/v2"

	"github.com/lxndio/random-walks/dp"
	"github.com/lxndio/random-walks/field"
	"github.com/lxndio/random-walks/kernel"
	"github.com/lxndio/random-walks/walk"
)

// LandCover reconstructs walks whose step radius and kernel depend on
// the land-cover label of the current site: open terrain may allow wide
// steps while dense cover restricts movement.
type LandCover struct {
	maxStepSizes []int
	fields       *field.Map
	kernels      []kernel.Kernel
	src          rand.Source
}

// NewLandCover creates a land-cover walker. maxStepSizes assigns a step
// radius to every user label appearing in kernels; fields carries the
// label of each site and is remapped onto the kernels' order internally.
// Returns ErrUnknownLandCover when a label in the map has no kernel or
// no step size.
func NewLandCover(
	maxStepSizes map[int]int,
	fields *field.Map,
	kernels []dp.LabeledKernel,
	src rand.Source,
) (*LandCover, error) {
	table := make(map[int]int, len(kernels))
	ks := make([]kernel.Kernel, 0, len(kernels))
	sizes := make([]int, 0, len(kernels))

	for i, lk := range kernels {
		m, ok := maxStepSizes[lk.Label]
		if !ok {
			return nil, ErrUnknownLandCover
		}
		table[lk.Label] = i
		ks = append(ks, lk.Kernel.Clone())
		sizes = append(sizes, m)
	}

	lo, hi := fields.Limits()
	for y := lo; y <= hi; y++ {
		for x := lo; x <= hi; x++ {
			if _, ok := table[fields.LabelAt(x, y)]; !ok {
				return nil, ErrUnknownLandCover
			}
		}
	}

	remapped := fields.Clone()
	remapped.Remap(table)

	return &LandCover{
		maxStepSizes: sizes,
		fields:       remapped,
		kernels:      ks,
		src:          sourceOrDefault(src),
	}, nil
}

// GeneratePath samples one walk ending at (toX, toY) after timeSteps
// steps.
func (w *LandCover) GeneratePath(pool *dp.Pool, toX, toY, timeSteps int) (walk.Walk, error) {
	prog, err := pool.Single()
	if err != nil {
		return nil, err
	}

	if !w.fields.InBounds(toX, toY) || prog.AtOr(toX, toY, timeSteps, 0) == 0 {
		return nil, ErrNoPathExists
	}

	path := make(walk.Walk, 0, timeSteps+1)
	x, y := toX, toY

	for t := timeSteps; t >= 1; t-- {
		path = append(path, walk.Point{X: x, Y: y})

		label := w.fields.LabelAt(x, y)
		k := w.kernels[label]
		moves := boxMoves(w.maxStepSizes[label])
		weights := make([]float64, len(moves))

		pHere := prog.AtOr(x, y, t, 0)
		if pHere == 0 {
			return nil, ErrInconsistentPath
		}

		for i, mov := range moves {
			pPrev := prog.AtOr(x+mov.Dx, y+mov.Dy, t-1, 0)
			weights[i] = k.At(-mov.Dx, -mov.Dy) * pPrev / pHere
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
func (w *LandCover) GeneratePaths(pool *dp.Pool, qty, toX, toY, timeSteps int) ([]walk.Walk, error) {
	return generatePaths(w, pool, qty, toX, toY, timeSteps)
}

// Name returns "lcw" or "Land Cover Walker".
func (w *LandCover) Name(short bool) string {
	if short {
		return "lcw"
	}

	return "Land Cover Walker"
}
