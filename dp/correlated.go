package dp

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lxndio/random-walks/field"
	"github.com/lxndio/random-walks/kernel"
)

// DInit is the direction class holding the unit mass at time 0. Class 0
// is kernel.Stay, the "no prior motion" class, so the first forward step
// is scored by the direction-agnostic kernel of that class.
const DInit = 0

// CorrelatedProgram is the directional dynamic program: a dense table
// P[t][d][x+T][y+T] of unnormalised path masses where d is the incoming
// direction class of the walker's most recent step.
//
// The table is a flat float64 arena addressed by
// ((t·D + d)·(2T+1) + (x+T))·(2T+1) + (y+T). It is mutated only by the
// forward pass and immutable afterwards.
type CorrelatedProgram struct {
	table         []float64
	timeLimit     int
	numDirections int
	side          int // 2T+1
	kernels       []kernel.Kernel
	dirKernel     kernel.DirKernel
	fields        *field.Map
	barrierLabel  int // field label blocking all mass; −1 when unused
	log           zerolog.Logger
}

// newCorrelatedProgram allocates a zero-filled directional program.
func newCorrelatedProgram(
	timeLimit int,
	kernels []kernel.Kernel,
	dirKernel kernel.DirKernel,
	fields *field.Map,
	barrierLabel int,
	log zerolog.Logger,
) *CorrelatedProgram {
	side := 2*timeLimit + 1
	d := len(kernels)

	return &CorrelatedProgram{
		table:         make([]float64, (timeLimit+1)*d*side*side),
		timeLimit:     timeLimit,
		numDirections: d,
		side:          side,
		kernels:       kernels,
		dirKernel:     dirKernel,
		fields:        fields,
		barrierLabel:  barrierLabel,
		log:           log,
	}
}

// index maps centred coordinates onto the flat arena.
func (p *CorrelatedProgram) index(x, y, d, t int) int {
	return ((t*p.numDirections+d)*p.side+(p.timeLimit+x))*p.side + (p.timeLimit + y)
}

// At returns P(x, y, d, t). Bounds are not checked; use AtOr when the
// coordinate may lie outside the table.
func (p *CorrelatedProgram) At(x, y, d, t int) float64 {
	return p.table[p.index(x, y, d, t)]
}

// AtOr returns P(x, y, d, t), or def when (x, y) lies outside [−T, +T]².
func (p *CorrelatedProgram) AtOr(x, y, d, t int, def float64) float64 {
	lo, hi := p.Limits()
	if x < lo || x > hi || y < lo || y > hi {
		return def
	}

	return p.table[p.index(x, y, d, t)]
}

// Set stores P(x, y, d, t).
func (p *CorrelatedProgram) Set(x, y, d, t int, v float64) {
	p.table[p.index(x, y, d, t)] = v
}

// Limits returns the valid coordinate range (−T, +T).
func (p *CorrelatedProgram) Limits() (int, int) { return -p.timeLimit, p.timeLimit }

// TimeLimit returns T.
func (p *CorrelatedProgram) TimeLimit() int { return p.timeLimit }

// NumDirections returns the number of direction classes D.
func (p *CorrelatedProgram) NumDirections() int { return p.numDirections }

// FieldTypes returns a deep copy of the field-type labels, rows[y+T][x+T].
func (p *CorrelatedProgram) FieldTypes() [][]int { return p.fields.Rows() }

// Compute runs the directional forward pass. Layer 0 holds unit mass at
// the origin in class DInit; every later entry P[t][d][x][y] sums, over
// all previous classes d' and all predecessor cells feasible for d, the
// predecessor mass weighted by the previous class's kernel.
//
// Complexity: O(T · D² · (2T+1)² · fan-in).
func (p *CorrelatedProgram) Compute() {
	lo, hi := p.Limits()

	p.Set(0, 0, DInit, 0, 1)

	start := time.Now()

	for t := 1; t <= p.timeLimit; t++ {
		for d := 0; d < p.numDirections; d++ {
			for x := lo; x <= hi; x++ {
				for y := lo; y <= hi; y++ {
					p.Set(x, y, d, t, p.applyKernelAt(x, y, d, t))
				}
			}
		}

		if t%10 == 0 {
			p.log.Debug().Int("t", t).Msg("computed layer")
		}
	}

	p.log.Info().Dur("took", time.Since(start)).Msg("computation finished")
}

// ComputeParallel runs the directional forward pass computing direction
// classes of one layer concurrently. Classes write disjoint regions and
// read only layer t−1, so the fork/join at each layer boundary is the
// only synchronisation. Bit-identical to Compute.
func (p *CorrelatedProgram) ComputeParallel() {
	lo, hi := p.Limits()

	p.Set(0, 0, DInit, 0, 1)

	start := time.Now()

	for t := 1; t <= p.timeLimit; t++ {
		var g errgroup.Group
		for d := 0; d < p.numDirections; d++ {
			d := d
			g.Go(func() error {
				for x := lo; x <= hi; x++ {
					for y := lo; y <= hi; y++ {
						p.Set(x, y, d, t, p.applyKernelAt(x, y, d, t))
					}
				}

				return nil
			})
		}
		_ = g.Wait()

		if t%10 == 0 {
			p.log.Debug().Int("t", t).Msg("computed layer")
		}
	}

	p.log.Info().Dur("took", time.Since(start)).Msg("parallel computation finished")
}

// applyKernelAt accumulates the mass arriving at (x, y) in class d at
// time t. Barrier sites take no mass at any positive time.
func (p *CorrelatedProgram) applyKernelAt(x, y, d, t int) float64 {
	if p.barrierLabel >= 0 && p.fields.LabelAt(x, y) == p.barrierLabel {
		return 0
	}

	lo, hi := p.Limits()

	var sum float64
	for dPrev := 0; dPrev < p.numDirections; dPrev++ {
		for _, cell := range p.dirKernel.CellsPointingTo(d) {
			i, j := x+cell.Dx, y+cell.Dy
			if i < lo || i > hi || j < lo || j > hi {
				continue
			}

			// The move from the predecessor into (x, y) is (−dx, −dy).
			sum += p.At(i, j, dPrev, t-1) * p.kernels[dPrev].At(-cell.Dx, -cell.Dy)
		}
	}

	return sum
}

// Variant returns a read-only scalar view of direction class d,
// satisfying the same accessor contract as a scalar Program.
func (p *CorrelatedProgram) Variant(d int) Variant {
	return directionView{p: p, d: d}
}

// directionView adapts one direction class of a CorrelatedProgram to the
// scalar Variant contract.
type directionView struct {
	p *CorrelatedProgram
	d int
}

func (v directionView) At(x, y, t int) float64 {
	if lo, hi := v.p.Limits(); x < lo || x > hi || y < lo || y > hi {
		panic(fmt.Sprintf("dp: coordinate (%d, %d) outside [%d, %d]", x, y, lo, hi))
	}

	return v.p.At(x, y, v.d, t)
}

func (v directionView) AtOr(x, y, t int, def float64) float64 {
	return v.p.AtOr(x, y, v.d, t, def)
}

func (v directionView) Limits() (int, int) { return v.p.Limits() }

// Equal reports whether two correlated programs have identical shape,
// tables and field types.
func (p *CorrelatedProgram) Equal(other *CorrelatedProgram) bool {
	if p.timeLimit != other.timeLimit || p.numDirections != other.numDirections {
		return false
	}
	for i := range p.table {
		if p.table[i] != other.table[i] {
			return false
		}
	}

	return p.fields.Equal(other.fields)
}
