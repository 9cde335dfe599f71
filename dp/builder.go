package dp

import (
	"github.com/rs/zerolog"

	"github.com/lxndio/random-walks/field"
	"github.com/lxndio/random-walks/kernel"
	"github.com/lxndio/random-walks/walk"
)

// LabeledKernel associates a field-type label with the kernel governing
// sites carrying that label.
type LabeledKernel struct {
	Label  int
	Kernel kernel.Kernel
}

// programType selects which forward pass the builder assembles.
type programType int

const (
	typeNone programType = iota
	typeSimple
	typeCorrelated
)

// Builder creates and initialises dynamic programs.
//
// A scalar program needs a time limit and at least one labelled kernel:
//
//	pool, err := dp.NewBuilder().
//	    Simple().
//	    TimeLimit(400).
//	    Kernel(k).
//	    Build()
//
// A correlated program takes a direction family and a direction kernel
// instead:
//
//	pool, err := dp.NewBuilder().
//	    Correlated().
//	    TimeLimit(100).
//	    Family(ks).
//	    DirKernel(kernel.FiveNeighborhood()).
//	    Build()
//
// Barriers block single sites or rectangles by relabelling them to a
// reserved all-zero kernel; no mass ever flows into a barrier site.
// Build validates the configuration and reports the first problem as one
// of the package's sentinel errors.
type Builder struct {
	timeLimit  int
	hasTime    bool
	typ        programType
	labeled    []LabeledKernel
	family     []kernel.Kernel
	dirKernel  *kernel.DirKernel
	fieldRows  [][]int
	barriers   []walk.Point
	log        zerolog.Logger
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{log: zerolog.Nop()}
}

// Simple selects the scalar dynamic program.
func (b *Builder) Simple() *Builder {
	b.typ = typeSimple

	return b
}

// Correlated selects the directional dynamic program.
func (b *Builder) Correlated() *Builder {
	b.typ = typeCorrelated

	return b
}

// TimeLimit sets the time limit T.
func (b *Builder) TimeLimit(t int) *Builder {
	b.timeLimit = t
	b.hasTime = true

	return b
}

// Kernel sets a single kernel governing every site (label 0).
func (b *Builder) Kernel(k kernel.Kernel) *Builder {
	return b.Kernels([]LabeledKernel{{Label: 0, Kernel: k}})
}

// Kernels sets the labelled kernels of a scalar program. Field-type
// labels are remapped onto the list's order at build time.
func (b *Builder) Kernels(ks []LabeledKernel) *Builder {
	b.labeled = ks

	return b
}

// Family sets the ordered per-direction kernel family of a correlated
// program; the slice index is the incoming direction class.
func (b *Builder) Family(ks []kernel.Kernel) *Builder {
	b.family = ks

	return b
}

// DirKernel sets the direction kernel of a correlated program.
func (b *Builder) DirKernel(dk kernel.DirKernel) *Builder {
	b.dirKernel = &dk

	return b
}

// FieldTypes sets explicit field-type labels, rows[y+T][x+T]. The rows
// must form a (2T+1)×(2T+1) square.
func (b *Builder) FieldTypes(rows [][]int) *Builder {
	b.fieldRows = rows

	return b
}

// AddBarrier blocks a single site.
func (b *Builder) AddBarrier(at walk.Point) *Builder {
	b.barriers = append(b.barriers, at)

	return b
}

// AddRectBarrier blocks every site of the inclusive rectangle from–to.
func (b *Builder) AddRectBarrier(from, to walk.Point) *Builder {
	for x := from.X; x <= to.X; x++ {
		for y := from.Y; y <= to.Y; y++ {
			b.barriers = append(b.barriers, walk.Point{X: x, Y: y})
		}
	}

	return b
}

// Logger attaches a logger to the built program. The default logger is
// disabled.
func (b *Builder) Logger(log zerolog.Logger) *Builder {
	b.log = log

	return b
}

// Build validates the configuration and returns the initialised pool.
func (b *Builder) Build() (*Pool, error) {
	if !b.hasTime || b.timeLimit < 1 {
		return nil, ErrNoTimeLimitSet
	}
	if b.typ == typeNone {
		return nil, ErrNoTypeSet
	}

	fields, err := b.buildFields()
	if err != nil {
		return nil, err
	}

	switch b.typ {
	case typeSimple:
		return b.buildSimple(fields)
	default:
		return b.buildCorrelated(fields)
	}
}

// buildFields assembles the field map from explicit rows or a blanket
// zero default.
func (b *Builder) buildFields() (*field.Map, error) {
	if b.fieldRows == nil {
		return field.New(b.timeLimit)
	}

	side := 2*b.timeLimit + 1
	if len(b.fieldRows) != side {
		return nil, ErrWrongSizeOfFieldTypes
	}
	for _, row := range b.fieldRows {
		if len(row) != side {
			return nil, ErrWrongSizeOfFieldTypes
		}
	}

	return field.FromRows(b.timeLimit, b.fieldRows)
}

// buildSimple assembles a scalar program pool.
func (b *Builder) buildSimple(fields *field.Map) (*Pool, error) {
	if b.family != nil {
		return nil, ErrMultipleKernelsForSimple
	}
	if len(b.labeled) == 0 {
		return nil, ErrNoKernelsSet
	}

	// Map user labels onto a contiguous kernel-index range.
	mapped := make([]kernel.Kernel, 0, len(b.labeled)+1)
	table := make(map[int]int, len(b.labeled))
	for i, lk := range b.labeled {
		mapped = append(mapped, lk.Kernel.Clone())
		table[lk.Label] = i
	}

	lo, hi := -b.timeLimit, b.timeLimit
	for y := lo; y <= hi; y++ {
		for x := lo; x <= hi; x++ {
			if _, ok := table[fields.LabelAt(x, y)]; !ok {
				return nil, ErrUnknownFieldType
			}
		}
	}
	fields.Remap(table)

	// The reserved barrier kernel sits past the user kernels.
	barrierIdx := len(mapped)
	mapped = append(mapped, kernel.Zero(3))

	for _, p := range b.barriers {
		if p.X < lo || p.X > hi || p.Y < lo || p.Y > hi {
			return nil, ErrBarrierOutOfRange
		}
		if err := fields.SetLabel(p.X, p.Y, barrierIdx); err != nil {
			return nil, err
		}
	}

	return NewSinglePool(newProgram(b.timeLimit, mapped, fields, b.log)), nil
}

// buildCorrelated assembles a directional program pool.
func (b *Builder) buildCorrelated(fields *field.Map) (*Pool, error) {
	if b.family == nil {
		if len(b.labeled) > 0 {
			return nil, ErrSingleKernelForCorrelated
		}

		return nil, ErrNoKernelsSet
	}
	if len(b.family) < 2 {
		return nil, ErrSingleKernelForCorrelated
	}
	if b.dirKernel == nil {
		return nil, ErrNoDirKernelSet
	}
	if b.dirKernel.NumDirections() != len(b.family) {
		return nil, ErrDirectionMismatch
	}

	family := make([]kernel.Kernel, len(b.family))
	for i, k := range b.family {
		family[i] = k.Clone()
	}

	barrierLabel := -1
	if len(b.barriers) > 0 {
		barrierLabel = maxLabel(fields) + 1

		lo, hi := -b.timeLimit, b.timeLimit
		for _, p := range b.barriers {
			if p.X < lo || p.X > hi || p.Y < lo || p.Y > hi {
				return nil, ErrBarrierOutOfRange
			}
			if err := fields.SetLabel(p.X, p.Y, barrierLabel); err != nil {
				return nil, err
			}
		}
	}

	return NewCorrelatedPool(newCorrelatedProgram(
		b.timeLimit, family, b.dirKernel.Clone(), fields, barrierLabel, b.log,
	)), nil
}

// maxLabel returns the largest label present in the map.
func maxLabel(m *field.Map) int {
	lo, hi := m.Limits()
	best := 0
	for y := lo; y <= hi; y++ {
		for x := lo; x <= hi; x++ {
			if l := m.LabelAt(x, y); l > best {
				best = l
			}
		}
	}

	return best
}
