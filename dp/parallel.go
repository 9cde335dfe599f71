package dp

import (
	"time"

	"golang.org/x/sync/errgroup"
)

// tiles partitions [−T, +T] into n contiguous ranges; the last range
// absorbs the remainder. Each range is [lo, hi) in centred coordinates.
type span struct {
	lo, hi int
}

func tiles(timeLimit, n int) []span {
	chunk := (2*timeLimit + 1) / n
	out := make([]span, 0, n)
	lo := -timeLimit
	for i := 0; i < n-1; i++ {
		out = append(out, span{lo: lo, hi: lo + chunk})
		lo += chunk
	}
	out = append(out, span{lo: lo, hi: timeLimit + 1})

	return out
}

// ComputeParallel runs the forward pass with per-layer tile parallelism:
// for each time step the grid is partitioned into a 3×3 set of disjoint
// output tiles which are computed concurrently from a read-only snapshot
// of the previous layer, then joined before the next step begins.
//
// The result is bit-identical to Compute: every output cell accumulates
// its sum in the same order in both passes.
func (p *Program) ComputeParallel() {
	p.Set(0, 0, 0, 1)

	ranges := tiles(p.timeLimit, 3)
	snapshot := make([]float64, p.side*p.side)

	start := time.Now()

	for t := 1; t <= p.timeLimit; t++ {
		copy(snapshot, p.layer(t-1))

		var g errgroup.Group
		for _, xr := range ranges {
			for _, yr := range ranges {
				xr, yr := xr, yr
				g.Go(func() error {
					for x := xr.lo; x < xr.hi; x++ {
						for y := yr.lo; y < yr.hi; y++ {
							p.Set(x, y, t, applyKernel(snapshot, p.kernels, p.fields, p.timeLimit, x, y))
						}
					}

					return nil
				})
			}
		}
		// Tiles write disjoint regions and read only the snapshot, so the
		// only synchronisation needed is the join at the layer boundary.
		_ = g.Wait()

		if t%50 == 0 {
			p.log.Debug().Int("t", t).Msg("computed layer")
		}
	}

	p.log.Info().Dur("took", time.Since(start)).Msg("parallel computation finished")
}
