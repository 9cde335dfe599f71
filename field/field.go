package field

import "github.com/lxndio/random-walks/grid"

// Map is a (2T+1)×(2T+1) grid of field-type labels in centred lattice
// coordinates. Label k means "kernel k applies at this site".
type Map struct {
	timeLimit int
	labels    *grid.Grid[int]
}

// New creates an all-zero map for the given time limit.
func New(timeLimit int) (*Map, error) {
	if timeLimit < 1 {
		return nil, ErrBadTimeLimit
	}
	side := 2*timeLimit + 1
	labels, err := grid.New[int](side, side)
	if err != nil {
		return nil, err
	}

	return &Map{timeLimit: timeLimit, labels: labels}, nil
}

// FromRows constructs a map from explicit label rows, rows[y+T][x+T].
// The input is deep-copied. Returns ErrWrongShape unless the rows form a
// (2T+1)×(2T+1) square.
func FromRows(timeLimit int, rows [][]int) (*Map, error) {
	if timeLimit < 1 {
		return nil, ErrBadTimeLimit
	}
	side := 2*timeLimit + 1
	if len(rows) != side {
		return nil, ErrWrongShape
	}
	for _, row := range rows {
		if len(row) != side {
			return nil, ErrWrongShape
		}
	}
	labels, err := grid.FromRows(rows)
	if err != nil {
		return nil, err
	}

	return &Map{timeLimit: timeLimit, labels: labels}, nil
}

// TimeLimit returns T.
func (m *Map) TimeLimit() int { return m.timeLimit }

// Limits returns the valid coordinate range (−T, +T).
func (m *Map) Limits() (int, int) { return -m.timeLimit, m.timeLimit }

// InBounds reports whether (x, y) lies within [−T, +T]².
func (m *Map) InBounds(x, y int) bool {
	return x >= -m.timeLimit && x <= m.timeLimit && y >= -m.timeLimit && y <= m.timeLimit
}

// LabelAt returns the label at lattice site (x, y).
// Panics outside [−T, +T]; use InBounds to guard.
func (m *Map) LabelAt(x, y int) int {
	return m.labels.At(m.timeLimit+x, m.timeLimit+y)
}

// SetLabel stores a label at lattice site (x, y).
func (m *Map) SetLabel(x, y, label int) error {
	if !m.InBounds(x, y) {
		return ErrOutOfRange
	}
	m.labels.Set(m.timeLimit+x, m.timeLimit+y, label)

	return nil
}

// FillRect assigns label to every site of the inclusive rectangle
// (x0, y0)–(x1, y1). The whole rectangle must lie within [−T, +T]².
func (m *Map) FillRect(x0, y0, x1, y1, label int) error {
	if !m.InBounds(x0, y0) || !m.InBounds(x1, y1) {
		return ErrOutOfRange
	}
	m.labels.FillRect(m.timeLimit+x0, m.timeLimit+y0, m.timeLimit+x1, m.timeLimit+y1, label)

	return nil
}

// Rows returns a deep copy of the labels, rows[y+T][x+T].
func (m *Map) Rows() [][]int { return m.labels.Rows() }

// Clone returns an independent copy of the map.
func (m *Map) Clone() *Map {
	return &Map{timeLimit: m.timeLimit, labels: m.labels.Clone()}
}

// Remap rewrites every label through the given table, mapping arbitrary
// user labels onto a contiguous kernel-index range. Labels missing from
// the table are left unchanged.
func (m *Map) Remap(table map[int]int) {
	for y := -m.timeLimit; y <= m.timeLimit; y++ {
		for x := -m.timeLimit; x <= m.timeLimit; x++ {
			if to, ok := table[m.LabelAt(x, y)]; ok {
				m.labels.Set(m.timeLimit+x, m.timeLimit+y, to)
			}
		}
	}
}

// Equal reports whether two maps have identical time limits and labels.
func (m *Map) Equal(other *Map) bool {
	if m.timeLimit != other.timeLimit {
		return false
	}

	return grid.Equal(m.labels, other.labels)
}
