package kernel

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// NormalDistGenerator produces a kernel whose weights follow a bivariate
// Gaussian with diagonal covariance Diffusion, sampled at the integer
// offsets of a Size×Size stencil and renormalised to sum to one.
// MeanX/MeanY shift the distribution centre away from (0, 0).
type NormalDistGenerator struct {
	Diffusion float64
	Size      int
	MeanX     int
	MeanY     int
}

// Prepare sizes the single kernel buffer to Size×Size.
func (g NormalDistGenerator) Prepare(kernels []*Kernel) error {
	if len(kernels) < 1 {
		return ErrOneKernelRequired
	}

	return kernels[0].initialize(g.Size)
}

// Generate samples the Gaussian pdf at every stencil offset and
// renormalises.
func (g NormalDistGenerator) Generate(kernels []*Kernel) error {
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
			k.set(dx, dy, math.Exp(dist.LogProb([]float64{float64(dx), float64(dy)})))
		}
	}
	k.normalize()

	return nil
}

// GeneratesQty returns 1.
func (NormalDistGenerator) GeneratesQty() int { return 1 }

// Name returns "nd" or "Normal Distribution".
func (NormalDistGenerator) Name(short bool) string {
	if short {
		return "nd"
	}

	return "Normal Distribution"
}

// newGaussian builds the bivariate normal with diagonal covariance.
func newGaussian(diffusion float64, meanX, meanY int) (*distmv.Normal, bool) {
	mu := []float64{float64(meanX), float64(meanY)}
	sigma := mat.NewSymDense(2, []float64{diffusion, 0, 0, diffusion})

	return distmv.NewNormal(mu, sigma, nil)
}
