package kernel

import "math"

// Side selects which half of a half-normal kernel keeps its mass.
type Side int

const (
	// SideLeft keeps offsets with dx ≤ +1, zeroing everything further east.
	SideLeft Side = iota
	// SideRight keeps offsets with dx ≥ −1, zeroing everything further west.
	SideRight
	// SideTop keeps offsets with dy ≤ +1, zeroing everything further south.
	SideTop
	// SideBottom keeps offsets with dy ≥ −1, zeroing everything further north.
	SideBottom
)

// HalfNormalDistGenerator produces a bivariate-Gaussian kernel with one
// half masked to zero before renormalisation. The centre band of one cell
// past the axis is kept so the walk can still stand still or sidestep.
type HalfNormalDistGenerator struct {
	Diffusion float64
	Size      int
	MeanX     int
	MeanY     int
	Side      Side
}

// Prepare sizes the single kernel buffer to Size×Size.
func (g HalfNormalDistGenerator) Prepare(kernels []*Kernel) error {
	if len(kernels) < 1 {
		return ErrOneKernelRequired
	}

	return kernels[0].initialize(g.Size)
}

// Generate samples the Gaussian pdf, masks the discarded side, then
// renormalises the remaining mass to sum to one.
func (g HalfNormalDistGenerator) Generate(kernels []*Kernel) error {
	if len(kernels) < 1 {
		return ErrOneKernelRequired
	}
	if g.Diffusion <= 0 {
		return ErrBadDiffusion
	}
	k := *kernels[0]

	dist, ok := newGaussian(g.Diffusion, g.MeanX, g.MeanY)
	if !ok {
		return ErrBadDiffusion
	}

	r := g.Size / 2
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if g.masked(dx, dy) {
				continue
			}
			k.set(dx, dy, math.Exp(dist.LogProb([]float64{float64(dx), float64(dy)})))
		}
	}
	k.normalize()

	return nil
}

// masked reports whether the offset lies on the discarded side.
func (g HalfNormalDistGenerator) masked(dx, dy int) bool {
	switch g.Side {
	case SideLeft:
		return dx > 1
	case SideRight:
		return dx < -1
	case SideTop:
		return dy > 1
	case SideBottom:
		return dy < -1
	default:
		return false
	}
}

// GeneratesQty returns 1.
func (HalfNormalDistGenerator) GeneratesQty() int { return 1 }

// Name returns "hnd" or "Half Normal Distribution".
func (HalfNormalDistGenerator) Name(short bool) string {
	if short {
		return "hnd"
	}

	return "Half Normal Distribution"
}
