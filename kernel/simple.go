package kernel

// SimpleGenerator produces the uniform 5-neighbourhood kernel: weight 1/5
// on each of stay, north, south, east and west.
type SimpleGenerator struct{}

// Prepare sizes the single kernel buffer to 3×3.
func (SimpleGenerator) Prepare(kernels []*Kernel) error {
	if len(kernels) < 1 {
		return ErrOneKernelRequired
	}

	return kernels[0].initialize(3)
}

// Generate fills the 5-neighbourhood stencil.
func (SimpleGenerator) Generate(kernels []*Kernel) error {
	if len(kernels) < 1 {
		return ErrOneKernelRequired
	}
	k := *kernels[0]

	for _, d := range []Direction{Stay, West, North, East, South} {
		off := d.Offset()
		k.set(off.Dx, off.Dy, 0.2)
	}

	return nil
}

// GeneratesQty returns 1.
func (SimpleGenerator) GeneratesQty() int { return 1 }

// Name returns "srw" or "Simple Random Walk".
func (SimpleGenerator) Name(short bool) string {
	if short {
		return "srw"
	}

	return "Simple Random Walk"
}
