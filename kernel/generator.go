package kernel

// Generator fills pre-sized kernel buffers with weights. Families that
// produce an ordered list of kernels (one per incoming direction class)
// report their cardinality through GeneratesQty.
type Generator interface {
	// Prepare sizes the kernel buffers; it must be called before Generate.
	Prepare(kernels []*Kernel) error
	// Generate fills the prepared buffers with weights.
	Generate(kernels []*Kernel) error
	// GeneratesQty returns how many kernels the generator produces.
	GeneratesQty() int
	// Name returns a short tag or a human-readable generator name.
	Name(short bool) string
}

// FromGenerator runs a single-kernel generator and returns the kernel.
// Returns ErrNotEnoughKernels when gen produces a family; use
// MultipleFromGenerator for those.
func FromGenerator(gen Generator) (Kernel, error) {
	if gen.GeneratesQty() != 1 {
		return Kernel{}, ErrNotEnoughKernels
	}

	ks, err := MultipleFromGenerator(gen)
	if err != nil {
		return Kernel{}, err
	}

	return ks[0], nil
}

// MultipleFromGenerator runs a generator and returns its full ordered
// kernel family. For correlated families the slice index is the incoming
// direction class.
func MultipleFromGenerator(gen Generator) ([]Kernel, error) {
	buf := make([]Kernel, gen.GeneratesQty())
	ptrs := make([]*Kernel, len(buf))
	for i := range buf {
		ptrs[i] = &buf[i]
	}

	if err := gen.Prepare(ptrs); err != nil {
		return nil, err
	}
	if err := gen.Generate(ptrs); err != nil {
		return nil, err
	}

	return buf, nil
}
