package dp_test

import (
	"testing"

	"github.com/lxndio/random-walks/dp"
	"github.com/lxndio/random-walks/kernel"
)

// benchPool builds an uncomputed scalar pool for benchmarks.
func benchPool(b *testing.B, timeLimit int, gen kernel.Generator) *dp.Pool {
	b.Helper()
	k, err := kernel.FromGenerator(gen)
	if err != nil {
		b.Fatalf("kernel: %v", err)
	}
	pool, err := dp.NewBuilder().Simple().TimeLimit(timeLimit).Kernel(k).Build()
	if err != nil {
		b.Fatalf("build: %v", err)
	}

	return pool
}

// BenchmarkCompute measures the serial forward pass with the simple
// kernel at T=100.
func BenchmarkCompute(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		pool := benchPool(b, 100, kernel.SimpleGenerator{})
		b.StartTimer()
		_ = pool.Compute()
	}
}

// BenchmarkComputeParallel measures the tiled forward pass with the
// simple kernel at T=100.
func BenchmarkComputeParallel(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		pool := benchPool(b, 100, kernel.SimpleGenerator{})
		b.StartTimer()
		_ = pool.ComputeParallel()
	}
}

// BenchmarkCompute_NormalDist measures the serial pass with a size-11
// Gaussian kernel at T=100.
func BenchmarkCompute_NormalDist(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		pool := benchPool(b, 100, kernel.NormalDistGenerator{Diffusion: 5.0, Size: 11})
		b.StartTimer()
		_ = pool.Compute()
	}
}
