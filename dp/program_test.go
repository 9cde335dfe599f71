package dp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lxndio/random-walks/dp"
	"github.com/lxndio/random-walks/kernel"
	"github.com/lxndio/random-walks/walk"
)

// simpleKernel returns the uniform 5-neighbourhood kernel.
func simpleKernel(t *testing.T) kernel.Kernel {
	t.Helper()
	k, err := kernel.FromGenerator(kernel.SimpleGenerator{})
	require.NoError(t, err)

	return k
}

// computeSimple builds and computes a scalar program with one kernel.
func computeSimple(t *testing.T, timeLimit int, k kernel.Kernel) *dp.Program {
	t.Helper()
	pool, err := dp.NewBuilder().
		Simple().
		TimeLimit(timeLimit).
		Kernel(k).
		Build()
	require.NoError(t, err)
	require.NoError(t, pool.Compute())

	prog, err := pool.Single()
	require.NoError(t, err)

	return prog
}

// TestCompute_FirstLayers pins the initial condition and the first
// convolution layer of the simple kernel.
func TestCompute_FirstLayers(t *testing.T) {
	prog := computeSimple(t, 10, simpleKernel(t))

	require.Equal(t, 1.0, prog.At(0, 0, 0))
	require.Equal(t, 0.0, prog.At(1, 0, 0))

	require.Equal(t, 0.2, prog.At(0, 0, 1))
	require.Equal(t, 0.2, prog.At(-1, 0, 1))
	require.Equal(t, 0.2, prog.At(1, 0, 1))
	require.Equal(t, 0.2, prog.At(0, -1, 1))
	require.Equal(t, 0.2, prog.At(0, 1, 1))
	require.Equal(t, 0.0, prog.At(1, 1, 1))
}

// TestCompute_MassConserved checks that each layer of a normalised
// kernel sums to one while no barrier absorbs mass.
func TestCompute_MassConserved(t *testing.T) {
	prog := computeSimple(t, 10, simpleKernel(t))

	for _, tt := range []int{1, 5, 10} {
		var sum float64
		for x := -10; x <= 10; x++ {
			for y := -10; y <= 10; y++ {
				sum += prog.At(x, y, tt)
			}
		}
		require.InDelta(t, 1.0, sum, 1e-9, "layer %d", tt)
	}
}

// TestCompute_Reachability verifies the cone |x|+|y| ≤ t·k for kernel
// radius k = 1.
func TestCompute_Reachability(t *testing.T) {
	prog := computeSimple(t, 10, simpleKernel(t))

	for tt := 0; tt <= 10; tt++ {
		for x := -10; x <= 10; x++ {
			for y := -10; y <= 10; y++ {
				if abs(x)+abs(y) > tt {
					require.Zero(t, prog.At(x, y, tt), "P(%d,%d,%d)", x, y, tt)
				}
			}
		}
	}
}

// TestCompute_Symmetry verifies axis symmetry with the simple kernel and
// an empty field map, up to floating-point rounding: mirrored cells sum
// the same terms in opposite order.
func TestCompute_Symmetry(t *testing.T) {
	prog := computeSimple(t, 8, simpleKernel(t))

	for tt := 0; tt <= 8; tt++ {
		for x := 0; x <= 8; x++ {
			for y := 0; y <= 8; y++ {
				v := prog.At(x, y, tt)
				require.InDelta(t, v, prog.At(-x, y, tt), 1e-15)
				require.InDelta(t, v, prog.At(x, -y, tt), 1e-15)
			}
		}
	}
}

// TestCompute_Barrier verifies that no mass ever occupies a barrier
// site.
func TestCompute_Barrier(t *testing.T) {
	pool, err := dp.NewBuilder().
		Simple().
		TimeLimit(10).
		Kernel(simpleKernel(t)).
		AddBarrier(walk.XY(5, 0)).
		Build()
	require.NoError(t, err)
	require.NoError(t, pool.Compute())

	prog, err := pool.Single()
	require.NoError(t, err)

	for tt := 1; tt <= 10; tt++ {
		require.Zero(t, prog.At(5, 0, tt), "t=%d", tt)
	}
	// Mass still flows around the barrier.
	require.Greater(t, prog.At(6, 0, 10), 0.0)
}

// TestComputeParallel_MatchesSerial requires bit-identical tables from
// the serial and tiled passes.
func TestComputeParallel_MatchesSerial(t *testing.T) {
	k := simpleKernel(t)

	build := func() *dp.Pool {
		pool, err := dp.NewBuilder().
			Simple().
			TimeLimit(12).
			Kernel(k).
			AddRectBarrier(walk.XY(3, -2), walk.XY(3, 2)).
			Build()
		require.NoError(t, err)

		return pool
	}

	serial := build()
	require.NoError(t, serial.Compute())
	parallel := build()
	require.NoError(t, parallel.ComputeParallel())

	sp, err := serial.Single()
	require.NoError(t, err)
	pp, err := parallel.Single()
	require.NoError(t, err)

	require.True(t, sp.Equal(pp))
}

// TestCompute_BiasedDrift checks that a north-biased kernel shifts the
// mean of the final layer's y-coordinate negative (north is y−1).
func TestCompute_BiasedDrift(t *testing.T) {
	k, err := kernel.FromGenerator(kernel.BiasedGenerator{
		Direction:   kernel.North,
		Probability: 0.5,
	})
	require.NoError(t, err)

	prog := computeSimple(t, 20, k)

	var mean float64
	for x := -20; x <= 20; x++ {
		for y := -20; y <= 20; y++ {
			mean += float64(y) * prog.At(x, y, 20)
		}
	}
	require.Less(t, mean, -1.0)
}

// TestProgram_Equal distinguishes programs computed with different
// kernels.
func TestProgram_Equal(t *testing.T) {
	a := computeSimple(t, 6, simpleKernel(t))
	b := computeSimple(t, 6, simpleKernel(t))
	require.True(t, a.Equal(b))

	biased, err := kernel.FromGenerator(kernel.BiasedGenerator{
		Direction:   kernel.North,
		Probability: 0.5,
	})
	require.NoError(t, err)
	c := computeSimple(t, 6, biased)
	require.False(t, a.Equal(c))
}

// TestProgram_AtOr returns the default outside the coordinate range.
func TestProgram_AtOr(t *testing.T) {
	prog := computeSimple(t, 5, simpleKernel(t))

	require.Equal(t, 0.0, prog.AtOr(6, 0, 5, 0))
	require.Equal(t, -1.0, prog.AtOr(0, -6, 5, -1))
	require.Equal(t, 1.0, prog.AtOr(0, 0, 0, -1))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
