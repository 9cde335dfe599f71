package dp

import (
	"os"

	"golang.org/x/sync/errgroup"
)

// ComputeMany runs the forward pass of every program concurrently. Each
// program owns its table, so the fan-out needs no synchronisation beyond
// the final join.
func ComputeMany(programs []*Program) {
	var g errgroup.Group
	for _, p := range programs {
		p := p
		g.Go(func() error {
			p.Compute()

			return nil
		})
	}
	_ = g.Wait()
}

// ComputeManySave computes every program concurrently and writes each to
// dp_%d.zst in dir — the layout OpenDiskVec reads back. Every program is
// computed and saved even when another save fails; the first error is
// returned.
func ComputeManySave(programs []*Program, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	var g errgroup.Group
	for i, p := range programs {
		i, p := i, p
		g.Go(func() error {
			p.Compute()

			return p.Save(vecFile(dir, i))
		})
	}

	return g.Wait()
}
