package kernel

// DirKernel enumerates, for each incoming direction class d, the relative
// offsets of predecessor cells that may transition into d. The forward
// pass of a correlated dynamic program iterates only over these cells.
//
// An offset (dx, dy) in CellsPointingTo(d) means: a walker standing at
// (x+dx, y+dy) may reach (x, y) with a move classified as d. The mapping
// must agree with the move→class rule of the walker that samples from the
// resulting tables, otherwise the distributions do not marginalise.
type DirKernel struct {
	cells [][]Offset
}

// NewDirKernel constructs a DirKernel from per-class predecessor offsets.
// The slice is deep-copied; index = direction class.
func NewDirKernel(cells [][]Offset) DirKernel {
	c := make([][]Offset, len(cells))
	for d, offs := range cells {
		c[d] = make([]Offset, len(offs))
		copy(c[d], offs)
	}

	return DirKernel{cells: c}
}

// FiveNeighborhood returns the DirKernel of the 5-neighbourhood correlated
// walk: classes map one-to-one onto moves, so the single predecessor cell
// of class d sits at the inverse of d's move.
func FiveNeighborhood() DirKernel {
	cells := make([][]Offset, NumDirections)
	for d := Stay; d <= South; d++ {
		off := d.Offset()
		cells[d] = []Offset{{Dx: -off.Dx, Dy: -off.Dy}}
	}

	return DirKernel{cells: cells}
}

// NumDirections returns the number of direction classes.
func (dk DirKernel) NumDirections() int { return len(dk.cells) }

// CellsPointingTo returns the predecessor offsets of class d.
// The returned slice is shared; callers must not modify it.
func (dk DirKernel) CellsPointingTo(d int) []Offset { return dk.cells[d] }

// Clone returns an independent copy.
func (dk DirKernel) Clone() DirKernel { return NewDirKernel(dk.cells) }
