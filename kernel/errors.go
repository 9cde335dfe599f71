package kernel

import "errors"

// Sentinel errors for kernel construction and generation.
var (
	// ErrSizeEven indicates a kernel size that is not odd.
	ErrSizeEven = errors.New("kernel: kernel size must be odd")
	// ErrWrongWeightCount indicates a literal weight list whose length is not size².
	ErrWrongWeightCount = errors.New("kernel: weight count must equal size squared")
	// ErrOneKernelRequired indicates a generator expecting exactly one kernel buffer.
	ErrOneKernelRequired = errors.New("kernel: one kernel required, found none")
	// ErrNotEnoughKernels indicates a family generator given too few kernel buffers.
	ErrNotEnoughKernels = errors.New("kernel: not enough kernels for generator")
	// ErrBadProbability indicates a probability parameter outside [0, 1].
	ErrBadProbability = errors.New("kernel: probability must be within [0, 1]")
	// ErrBadDirection indicates a direction that is not a cardinal direction.
	ErrBadDirection = errors.New("kernel: direction must be a cardinal direction")
	// ErrBadDiffusion indicates a non-positive diffusion parameter.
	ErrBadDiffusion = errors.New("kernel: diffusion must be positive")
)
