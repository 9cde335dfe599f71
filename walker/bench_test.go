package walker_test

import (
	"math/rand/v2"
	"testing"

	"github.com/lxndio/random-walks/dp"
	"github.com/lxndio/random-walks/kernel"
	"github.com/lxndio/random-walks/walker"
)

// BenchmarkStandard_GeneratePaths measures bulk path generation against
// a precomputed T=100 program.
func BenchmarkStandard_GeneratePaths(b *testing.B) {
	k, err := kernel.FromGenerator(kernel.SimpleGenerator{})
	if err != nil {
		b.Fatalf("kernel: %v", err)
	}
	pool, err := dp.NewBuilder().Simple().TimeLimit(100).Kernel(k).Build()
	if err != nil {
		b.Fatalf("build: %v", err)
	}
	if err := pool.Compute(); err != nil {
		b.Fatalf("compute: %v", err)
	}

	w := walker.NewStandard(k, rand.NewPCG(1, 2))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := w.GeneratePaths(pool, 100, 25, 0, 100); err != nil {
			b.Fatalf("generate: %v", err)
		}
	}
}

// BenchmarkMultiStep_GeneratePath measures a single wide-step walk.
func BenchmarkMultiStep_GeneratePath(b *testing.B) {
	k, err := kernel.FromGenerator(kernel.NormalDistGenerator{Diffusion: 10.0, Size: 21})
	if err != nil {
		b.Fatalf("kernel: %v", err)
	}
	pool, err := dp.NewBuilder().Simple().TimeLimit(100).Kernel(k).Build()
	if err != nil {
		b.Fatalf("build: %v", err)
	}
	if err := pool.Compute(); err != nil {
		b.Fatalf("compute: %v", err)
	}

	w := walker.NewMultiStep(10, k, rand.NewPCG(3, 4))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := w.GeneratePath(pool, 25, 0, 100); err != nil {
			b.Fatalf("generate: %v", err)
		}
	}
}
