package walker

import (
	"math/rand/v2"

	"github.com/lxndio/random-walks/dp"
	"github.com/lxndio/random-walks/kernel"
	"github.com/lxndio/random-walks/walk"
)

// Walker generates random walks ending at a given lattice point after a
// given number of time steps, using a precomputed dynamic program pool.
type Walker interface {
	// GeneratePath samples one walk of timeSteps steps ending at
	// (toX, toY). The returned walk has timeSteps+1 points.
	GeneratePath(pool *dp.Pool, toX, toY, timeSteps int) (walk.Walk, error)
	// GeneratePaths samples qty walks sequentially from the walker's
	// random source.
	GeneratePaths(pool *dp.Pool, qty, toX, toY, timeSteps int) ([]walk.Walk, error)
	// Name returns a short tag or a human-readable walker name.
	Name(short bool) string
}

// generatePaths is the shared sequential bulk generator.
func generatePaths(w Walker, pool *dp.Pool, qty, toX, toY, timeSteps int) ([]walk.Walk, error) {
	paths := make([]walk.Walk, 0, qty)
	for i := 0; i < qty; i++ {
		path, err := w.GeneratePath(pool, toX, toY, timeSteps)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// sourceOrDefault returns src, or a freshly seeded source when nil.
func sourceOrDefault(src rand.Source) rand.Source {
	if src == nil {
		return rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	return src
}

// fiveNeighborhood lists the candidate predecessor offsets of the
// 5-neighbourhood walkers in kernel.Direction order.
func fiveNeighborhood() []kernel.Offset {
	moves := make([]kernel.Offset, kernel.NumDirections)
	for d := kernel.Stay; d <= kernel.South; d++ {
		moves[d] = d.Offset()
	}

	return moves
}

// boxMoves lists all offsets of the (2M+1)² box in row-major dx order.
func boxMoves(m int) []kernel.Offset {
	moves := make([]kernel.Offset, 0, (2*m+1)*(2*m+1))
	for dx := -m; dx <= m; dx++ {
		for dy := -m; dy <= m; dy++ {
			moves = append(moves, kernel.Offset{Dx: dx, Dy: dy})
		}
	}

	return moves
}

// ringMoves lists all offsets with |dx|+|dy| = s in row-major dx order.
func ringMoves(s int) []kernel.Offset {
	moves := make([]kernel.Offset, 0, 4*s)
	for dx := -s; dx <= s; dx++ {
		for dy := -s; dy <= s; dy++ {
			if abs(dx)+abs(dy) == s {
				moves = append(moves, kernel.Offset{Dx: dx, Dy: dy})
			}
		}
	}

	return moves
}

// reverse flips a walk in place so it reads forward in time.
func reverse(w walk.Walk) {
	for i, j := 0, len(w)-1; i < j; i, j = i+1, j-1 {
		w[i], w[j] = w[j], w[i]
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
