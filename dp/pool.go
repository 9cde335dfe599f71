package dp

// Variant is the read-only accessor contract one program variant
// satisfies: a scalar Program, one direction class of a
// CorrelatedProgram, or a lazily loaded on-disk program.
type Variant interface {
	// At returns P(x, y, t); out-of-range coordinates panic.
	At(x, y, t int) float64
	// AtOr returns P(x, y, t), or def outside [−T, +T]².
	AtOr(x, y, t int, def float64) float64
	// Limits returns the valid coordinate range (−T, +T).
	Limits() (int, int)
}

// Compile-time contract checks.
var (
	_ Variant = (*Program)(nil)
	_ Variant = directionView{}
)

// Kind tags the three pool variants.
type Kind int

const (
	// KindSingle holds one in-memory program.
	KindSingle Kind = iota
	// KindMultiple holds many in-memory variants.
	KindMultiple
	// KindMultipleFromDisk lazily loads variants from a directory.
	KindMultipleFromDisk
)

// Pool is the tagged container handed to walkers. All variants satisfy
// one accessor contract; walkers additionally require a specific kind
// and fail with ErrRequiresSingleProgram or ErrRequiresMultiplePrograms
// on a mismatch.
type Pool struct {
	kind       Kind
	single     *Program
	multiple   []Variant
	correlated *CorrelatedProgram
	disk       *DiskVec
}

// NewSinglePool wraps one scalar program.
func NewSinglePool(p *Program) *Pool {
	return &Pool{kind: KindSingle, single: p}
}

// NewMultiplePool wraps an ordered family of scalar programs, one per
// variant (for correlated walkers: one per direction class).
func NewMultiplePool(ps []*Program) *Pool {
	vs := make([]Variant, len(ps))
	for i, p := range ps {
		vs[i] = p
	}

	return &Pool{kind: KindMultiple, multiple: vs}
}

// NewCorrelatedPool wraps a directional program, exposing its direction
// classes as pool variants.
func NewCorrelatedPool(p *CorrelatedProgram) *Pool {
	vs := make([]Variant, p.NumDirections())
	for d := range vs {
		vs[d] = p.Variant(d)
	}

	return &Pool{kind: KindMultiple, multiple: vs, correlated: p}
}

// NewDiskPool wraps a lazily loading on-disk program vector.
func NewDiskPool(v *DiskVec) *Pool {
	return &Pool{kind: KindMultipleFromDisk, disk: v}
}

// Kind returns the pool's variant tag.
func (p *Pool) Kind() Kind { return p.kind }

// Len returns the number of variants in the pool.
func (p *Pool) Len() int {
	switch p.kind {
	case KindSingle:
		return 1
	case KindMultiple:
		return len(p.multiple)
	default:
		return p.disk.Len()
	}
}

// Single returns the wrapped scalar program, or ErrRequiresSingleProgram
// for multi-variant pools.
func (p *Pool) Single() (*Program, error) {
	if p.kind != KindSingle {
		return nil, ErrRequiresSingleProgram
	}

	return p.single, nil
}

// Variant returns variant i. For single pools only variant 0 exists.
// Disk pools load (and cache) the variant's program on demand.
func (p *Pool) Variant(i int) (Variant, error) {
	switch p.kind {
	case KindSingle:
		if i != 0 {
			return nil, ErrVariantOutOfRange
		}

		return p.single, nil
	case KindMultiple:
		if i < 0 || i >= len(p.multiple) {
			return nil, ErrVariantOutOfRange
		}

		return p.multiple[i], nil
	default:
		return p.disk.Get(i)
	}
}

// At returns P(x, y, t) of the given variant. Out-of-range coordinates
// panic; use AtOr when the coordinate may be outside the table.
func (p *Pool) At(x, y, t, variant int) (float64, error) {
	v, err := p.Variant(variant)
	if err != nil {
		return 0, err
	}

	return v.At(x, y, t), nil
}

// AtOr returns P(x, y, t) of the given variant, or def outside the
// coordinate range.
func (p *Pool) AtOr(x, y, t, variant int, def float64) (float64, error) {
	v, err := p.Variant(variant)
	if err != nil {
		return 0, err
	}

	return v.AtOr(x, y, t, def), nil
}

// Limits returns the coordinate range (−T, +T) of the pool's programs.
func (p *Pool) Limits() (int, int) {
	switch p.kind {
	case KindSingle:
		return p.single.Limits()
	case KindMultiple:
		return p.multiple[0].Limits()
	default:
		return p.disk.Limits()
	}
}

// Correlated returns the wrapped directional program, or
// ErrRequiresMultiplePrograms when the pool does not hold one.
func (p *Pool) Correlated() (*CorrelatedProgram, error) {
	if p.correlated == nil {
		return nil, ErrRequiresMultiplePrograms
	}

	return p.correlated, nil
}

// Compute runs the forward pass of the wrapped scalar or directional
// program. Pools of separate scalar programs are computed with
// ComputeMany before pooling; calling Compute on one fails with
// ErrRequiresSingleProgram.
func (p *Pool) Compute() error {
	switch {
	case p.kind == KindSingle:
		p.single.Compute()
	case p.correlated != nil:
		p.correlated.Compute()
	default:
		return ErrRequiresSingleProgram
	}

	return nil
}

// ComputeParallel is Compute with per-layer tile (scalar) or per-class
// (directional) parallelism.
func (p *Pool) ComputeParallel() error {
	switch {
	case p.kind == KindSingle:
		p.single.ComputeParallel()
	case p.correlated != nil:
		p.correlated.ComputeParallel()
	default:
		return ErrRequiresSingleProgram
	}

	return nil
}
