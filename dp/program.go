package dp

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lxndio/random-walks/field"
	"github.com/lxndio/random-walks/kernel"
)

// Program is the scalar dynamic program: a dense table of unnormalised
// path masses P[t][x+T][y+T] for t ∈ [0, T] and x, y ∈ [−T, +T].
//
// The table is a single flat float64 arena addressed by
// (t·(2T+1) + (x+T))·(2T+1) + (y+T) for locality and cheap persistence.
// It is mutated only by Compute/ComputeParallel and immutable afterwards.
type Program struct {
	table     []float64
	timeLimit int
	side      int // 2T+1
	kernels   []kernel.Kernel
	fields    *field.Map
	log       zerolog.Logger
}

// newProgram allocates a zero-filled program. The field map's labels must
// already index into kernels.
func newProgram(timeLimit int, kernels []kernel.Kernel, fields *field.Map, log zerolog.Logger) *Program {
	side := 2*timeLimit + 1

	return &Program{
		table:     make([]float64, (timeLimit+1)*side*side),
		timeLimit: timeLimit,
		side:      side,
		kernels:   kernels,
		fields:    fields,
		log:       log,
	}
}

// index maps centred coordinates onto the flat arena.
func (p *Program) index(x, y, t int) int {
	return (t*p.side+(p.timeLimit+x))*p.side + (p.timeLimit + y)
}

// At returns P(x, y, t). Out-of-range coordinates panic. Use AtOr when
// the coordinate may be outside the table.
func (p *Program) At(x, y, t int) float64 {
	if lo, hi := p.Limits(); x < lo || x > hi || y < lo || y > hi {
		panic(fmt.Sprintf("dp: coordinate (%d, %d) outside [%d, %d]", x, y, lo, hi))
	}

	return p.table[p.index(x, y, t)]
}

// AtOr returns P(x, y, t), or def when (x, y) lies outside [−T, +T]².
func (p *Program) AtOr(x, y, t int, def float64) float64 {
	lo, hi := p.Limits()
	if x < lo || x > hi || y < lo || y > hi {
		return def
	}

	return p.table[p.index(x, y, t)]
}

// Set stores P(x, y, t).
func (p *Program) Set(x, y, t int, v float64) {
	p.table[p.index(x, y, t)] = v
}

// Limits returns the valid coordinate range (−T, +T).
func (p *Program) Limits() (int, int) { return -p.timeLimit, p.timeLimit }

// TimeLimit returns T.
func (p *Program) TimeLimit() int { return p.timeLimit }

// FieldTypes returns a deep copy of the field-type labels, rows[y+T][x+T].
func (p *Program) FieldTypes() [][]int { return p.fields.Rows() }

// Compute runs the forward pass: layer 0 holds unit mass at the origin,
// every later layer is the convolution of its predecessor with the
// per-site kernel.
//
// Complexity: O(T · (2T+1)² · s²) for kernels of size s.
func (p *Program) Compute() {
	lo, hi := p.Limits()

	p.Set(0, 0, 0, 1)

	start := time.Now()

	for t := 1; t <= p.timeLimit; t++ {
		for x := lo; x <= hi; x++ {
			for y := lo; y <= hi; y++ {
				p.Set(x, y, t, applyKernel(p.layer(t-1), p.kernels, p.fields, p.timeLimit, x, y))
			}
		}

		if t%50 == 0 {
			p.log.Debug().Int("t", t).Msg("computed layer")
		}
	}

	p.log.Info().Dur("took", time.Since(start)).Msg("computation finished")
}

// layer returns the flat (2T+1)² slice of time step t.
func (p *Program) layer(t int) []float64 {
	size := p.side * p.side

	return p.table[t*size : (t+1)*size]
}

// applyKernel convolves one output cell with the previous layer using the
// kernel selected by the site's field-type label. Out-of-range
// predecessors contribute nothing.
func applyKernel(prev []float64, kernels []kernel.Kernel, fields *field.Map, timeLimit, x, y int) float64 {
	k := kernels[fields.LabelAt(x, y)]
	ks := k.Radius()
	side := 2*timeLimit + 1

	var sum float64
	for i := max(x-ks, -timeLimit); i <= min(x+ks, timeLimit); i++ {
		for j := max(y-ks, -timeLimit); j <= min(y+ks, timeLimit); j++ {
			// Kernel coordinates are the inverted offset: the move from
			// predecessor (i, j) into (x, y).
			sum += prev[(timeLimit+i)*side+(timeLimit+j)] * k.At(x-i, y-j)
		}
	}

	return sum
}

// Equal reports whether two programs have identical time limits, tables
// and field types. Kernel contents are not compared.
func (p *Program) Equal(other *Program) bool {
	if p.timeLimit != other.timeLimit {
		return false
	}
	for i := range p.table {
		if p.table[i] != other.table[i] {
			return false
		}
	}

	return p.fields.Equal(other.fields)
}
