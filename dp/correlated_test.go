package dp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lxndio/random-walks/dp"
	"github.com/lxndio/random-walks/kernel"
	"github.com/lxndio/random-walks/walk"
)

// buildCorrelated builds a correlated pool with the 5-direction family.
func buildCorrelated(t *testing.T, timeLimit int, persistence float64) *dp.Pool {
	t.Helper()
	ks, err := kernel.MultipleFromGenerator(kernel.CorrelatedGenerator{Persistence: persistence})
	require.NoError(t, err)

	pool, err := dp.NewBuilder().
		Correlated().
		TimeLimit(timeLimit).
		Family(ks).
		DirKernel(kernel.FiveNeighborhood()).
		Build()
	require.NoError(t, err)

	return pool
}

// TestCorrelated_InitialCondition pins the unit mass in class DInit.
func TestCorrelated_InitialCondition(t *testing.T) {
	pool := buildCorrelated(t, 6, 0.5)
	require.NoError(t, pool.Compute())
	prog, err := pool.Correlated()
	require.NoError(t, err)

	require.Equal(t, 1.0, prog.At(0, 0, dp.DInit, 0))
	for d := 0; d < prog.NumDirections(); d++ {
		if d != dp.DInit {
			require.Zero(t, prog.At(0, 0, d, 0))
		}
	}
}

// TestCorrelated_FirstLayer: at t=1 only the no-motion class's kernel
// acts, and each class's mass sits exactly on its own move.
func TestCorrelated_FirstLayer(t *testing.T) {
	pool := buildCorrelated(t, 6, 0.5)
	require.NoError(t, pool.Compute())
	prog, err := pool.Correlated()
	require.NoError(t, err)

	for d := kernel.Stay; d <= kernel.South; d++ {
		off := d.Offset()
		require.Equal(t, 0.2, prog.At(off.Dx, off.Dy, int(d), 1), "class %s", d)

		// No other site carries mass in this class at t=1.
		var sum float64
		for x := -6; x <= 6; x++ {
			for y := -6; y <= 6; y++ {
				sum += prog.At(x, y, int(d), 1)
			}
		}
		require.InDelta(t, 0.2, sum, 1e-12)
	}
}

// TestCorrelated_MassConserved sums all classes of a layer to one.
func TestCorrelated_MassConserved(t *testing.T) {
	pool := buildCorrelated(t, 8, 0.7)
	require.NoError(t, pool.Compute())
	prog, err := pool.Correlated()
	require.NoError(t, err)

	for _, tt := range []int{1, 4, 8} {
		var sum float64
		for d := 0; d < prog.NumDirections(); d++ {
			for x := -8; x <= 8; x++ {
				for y := -8; y <= 8; y++ {
					sum += prog.At(x, y, d, tt)
				}
			}
		}
		require.InDelta(t, 1.0, sum, 1e-9, "layer %d", tt)
	}
}

// TestCorrelated_ParallelMatchesSerial requires bit-identical tables.
func TestCorrelated_ParallelMatchesSerial(t *testing.T) {
	serial := buildCorrelated(t, 8, 0.6)
	require.NoError(t, serial.Compute())
	parallel := buildCorrelated(t, 8, 0.6)
	require.NoError(t, parallel.ComputeParallel())

	sp, err := serial.Correlated()
	require.NoError(t, err)
	pp, err := parallel.Correlated()
	require.NoError(t, err)
	require.True(t, sp.Equal(pp))
}

// TestCorrelated_Barrier blocks a site across all classes.
func TestCorrelated_Barrier(t *testing.T) {
	ks, err := kernel.MultipleFromGenerator(kernel.CorrelatedGenerator{Persistence: 0.5})
	require.NoError(t, err)

	pool, err := dp.NewBuilder().
		Correlated().
		TimeLimit(6).
		Family(ks).
		DirKernel(kernel.FiveNeighborhood()).
		AddBarrier(walk.XY(2, 0)).
		Build()
	require.NoError(t, err)
	require.NoError(t, pool.Compute())

	prog, err := pool.Correlated()
	require.NoError(t, err)

	for tt := 1; tt <= 6; tt++ {
		for d := 0; d < prog.NumDirections(); d++ {
			require.Zero(t, prog.At(2, 0, d, tt))
		}
	}
	require.Greater(t, prog.At(3, 0, kernel.NumDirections-1, 6)+prog.At(3, 0, 0, 6)+
		prog.At(3, 0, 1, 6)+prog.At(3, 0, 2, 6)+prog.At(3, 0, 3, 6), 0.0)
}

// TestCorrelated_Variant exposes classes through the Variant view.
func TestCorrelated_Variant(t *testing.T) {
	pool := buildCorrelated(t, 5, 0.5)
	require.NoError(t, pool.Compute())
	prog, err := pool.Correlated()
	require.NoError(t, err)

	v, err := pool.Variant(int(kernel.North))
	require.NoError(t, err)

	off := kernel.North.Offset()
	require.Equal(t, prog.At(off.Dx, off.Dy, int(kernel.North), 1), v.At(off.Dx, off.Dy, 1))
	require.Equal(t, 0.0, v.AtOr(9, 9, 1, 0))

	lo, hi := v.Limits()
	require.Equal(t, -5, lo)
	require.Equal(t, 5, hi)
}
