package dp

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog"

	"github.com/lxndio/random-walks/field"
	"github.com/lxndio/random-walks/kernel"
)

// On-disk layout: zstd-compressed little-endian streams.
//
//	scalar file:      u64 T; f64 values (t, x, y); u64 labels (x, y)
//	directional file: u64 T; u64 D; f64 values (t, d, x, y); u64 labels
//	layered family:   layer_%d.zst with [u64 T, u64 V] then V×(2T+1)² f64
//	                  per file, plus a field_types.zst trailer of u64 labels

func writeU64(w io.Writer, buf []byte, v uint64) error {
	binary.LittleEndian.PutUint64(buf, v)
	_, err := w.Write(buf)

	return err
}

func writeF64(w io.Writer, buf []byte, v float64) error {
	return writeU64(w, buf, math.Float64bits(v))
}

func readU64(r io.Reader, buf []byte) (uint64, error) {
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint64(buf), nil
}

func readF64(r io.Reader, buf []byte) (float64, error) {
	v, err := readU64(r, buf)

	return math.Float64frombits(v), err
}

// newEncoder wraps w in a zstd stream at best compression.
func newEncoder(w io.Writer) (*zstd.Encoder, error) {
	return zstd.NewWriter(w,
		zstd.WithEncoderLevel(zstd.SpeedBestCompression),
		zstd.WithEncoderConcurrency(4),
	)
}

// Save writes the program to a zstd-compressed file.
func (p *Program) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := newEncoder(f)
	if err != nil {
		return err
	}

	lo, hi := p.Limits()
	buf := make([]byte, 8)

	if err := writeU64(enc, buf, uint64(p.timeLimit)); err != nil {
		return err
	}
	for t := 0; t <= p.timeLimit; t++ {
		for x := lo; x <= hi; x++ {
			for y := lo; y <= hi; y++ {
				if err := writeF64(enc, buf, p.At(x, y, t)); err != nil {
					return err
				}
			}
		}
	}
	for x := lo; x <= hi; x++ {
		for y := lo; y <= hi; y++ {
			if err := writeU64(enc, buf, uint64(p.fields.LabelAt(x, y))); err != nil {
				return err
			}
		}
	}

	return enc.Close()
}

// Load reads a program saved with Save. The loaded program carries a
// zero kernel: it serves walkers through its table but cannot be
// recomputed.
func Load(filename string) (*Program, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	buf := make([]byte, 8)

	timeLimit, err := readU64(dec, buf)
	if err != nil {
		return nil, fmt.Errorf("dp: could not read time limit: %w", err)
	}

	fields, err := field.New(int(timeLimit))
	if err != nil {
		return nil, err
	}
	p := newProgram(int(timeLimit), []kernel.Kernel{kernel.Zero(3)}, fields, zerolog.Nop())

	lo, hi := p.Limits()
	for t := 0; t <= p.timeLimit; t++ {
		for x := lo; x <= hi; x++ {
			for y := lo; y <= hi; y++ {
				v, err := readF64(dec, buf)
				if err != nil {
					return nil, err
				}
				p.Set(x, y, t, v)
			}
		}
	}
	for x := lo; x <= hi; x++ {
		for y := lo; y <= hi; y++ {
			label, err := readU64(dec, buf)
			if err != nil {
				return nil, err
			}
			if err := fields.SetLabel(x, y, int(label)); err != nil {
				return nil, err
			}
		}
	}

	return p, nil
}

// Save writes the directional program to a zstd-compressed file.
func (p *CorrelatedProgram) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := newEncoder(f)
	if err != nil {
		return err
	}

	lo, hi := p.Limits()
	buf := make([]byte, 8)

	if err := writeU64(enc, buf, uint64(p.timeLimit)); err != nil {
		return err
	}
	if err := writeU64(enc, buf, uint64(p.numDirections)); err != nil {
		return err
	}
	for t := 0; t <= p.timeLimit; t++ {
		for d := 0; d < p.numDirections; d++ {
			for x := lo; x <= hi; x++ {
				for y := lo; y <= hi; y++ {
					if err := writeF64(enc, buf, p.At(x, y, d, t)); err != nil {
						return err
					}
				}
			}
		}
	}
	for x := lo; x <= hi; x++ {
		for y := lo; y <= hi; y++ {
			if err := writeU64(enc, buf, uint64(p.fields.LabelAt(x, y))); err != nil {
				return err
			}
		}
	}

	return enc.Close()
}

// LoadCorrelated reads a directional program saved with Save. The kernel
// family and direction kernel are not serialised and must be supplied;
// the family size must match the stored class count.
func LoadCorrelated(filename string, kernels []kernel.Kernel, dirKernel kernel.DirKernel) (*CorrelatedProgram, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	buf := make([]byte, 8)

	timeLimit, err := readU64(dec, buf)
	if err != nil {
		return nil, fmt.Errorf("dp: could not read time limit: %w", err)
	}
	numDirections, err := readU64(dec, buf)
	if err != nil {
		return nil, fmt.Errorf("dp: could not read direction count: %w", err)
	}
	if int(numDirections) != len(kernels) {
		return nil, ErrDirectionMismatch
	}

	fields, err := field.New(int(timeLimit))
	if err != nil {
		return nil, err
	}
	p := newCorrelatedProgram(int(timeLimit), kernels, dirKernel, fields, -1, zerolog.Nop())

	lo, hi := p.Limits()
	for t := 0; t <= p.timeLimit; t++ {
		for d := 0; d < p.numDirections; d++ {
			for x := lo; x <= hi; x++ {
				for y := lo; y <= hi; y++ {
					v, err := readF64(dec, buf)
					if err != nil {
						return nil, err
					}
					p.Set(x, y, d, t, v)
				}
			}
		}
	}
	for x := lo; x <= hi; x++ {
		for y := lo; y <= hi; y++ {
			label, err := readU64(dec, buf)
			if err != nil {
				return nil, err
			}
			if err := fields.SetLabel(x, y, int(label)); err != nil {
				return nil, err
			}
		}
	}

	return p, nil
}

// layerFile names the compressed file of time step t.
func layerFile(dir string, t int) string {
	return filepath.Join(dir, fmt.Sprintf("layer_%d.zst", t))
}

// fieldTypesFile names the label trailer file of a layered family.
func fieldTypesFile(dir string) string {
	return filepath.Join(dir, "field_types.zst")
}

// SaveLayered writes the directional program as a layered family: one
// compressed file per time step holding all direction classes of that
// layer, plus a trailer file with the field-type labels. Used when the
// full family does not fit in memory at query time.
func (p *CorrelatedProgram) SaveLayered(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	lo, hi := p.Limits()
	buf := make([]byte, 8)

	for t := 0; t <= p.timeLimit; t++ {
		if err := p.saveLayer(layerFile(dir, t), t, lo, hi, buf); err != nil {
			return err
		}
		p.log.Debug().Int("t", t).Msg("saved layer")
	}

	f, err := os.Create(fieldTypesFile(dir))
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := newEncoder(f)
	if err != nil {
		return err
	}
	for x := lo; x <= hi; x++ {
		for y := lo; y <= hi; y++ {
			if err := writeU64(enc, buf, uint64(p.fields.LabelAt(x, y))); err != nil {
				return err
			}
		}
	}

	return enc.Close()
}

// saveLayer writes one layer_%d.zst file.
func (p *CorrelatedProgram) saveLayer(filename string, t, lo, hi int, buf []byte) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := newEncoder(f)
	if err != nil {
		return err
	}

	if err := writeU64(enc, buf, uint64(p.timeLimit)); err != nil {
		return err
	}
	if err := writeU64(enc, buf, uint64(p.numDirections)); err != nil {
		return err
	}
	for d := 0; d < p.numDirections; d++ {
		for x := lo; x <= hi; x++ {
			for y := lo; y <= hi; y++ {
				if err := writeF64(enc, buf, p.At(x, y, d, t)); err != nil {
					return err
				}
			}
		}
	}

	return enc.Close()
}

// LayeredStore reads single values out of a layered family without
// holding any layer in memory. Every query opens the layer file and
// decompresses up to the requested cell: access is O(layer size).
type LayeredStore struct {
	dir         string
	timeLimit   int
	numVariants int
}

// OpenLayered opens a layered family directory, reading the header of
// the first layer file for the time limit and variant count.
func OpenLayered(dir string) (*LayeredStore, error) {
	f, err := os.Open(layerFile(dir, 0))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	buf := make([]byte, 8)
	timeLimit, err := readU64(dec, buf)
	if err != nil {
		return nil, err
	}
	numVariants, err := readU64(dec, buf)
	if err != nil {
		return nil, err
	}

	return &LayeredStore{
		dir:         dir,
		timeLimit:   int(timeLimit),
		numVariants: int(numVariants),
	}, nil
}

// TimeLimit returns T.
func (s *LayeredStore) TimeLimit() int { return s.timeLimit }

// NumVariants returns the number of direction classes per layer.
func (s *LayeredStore) NumVariants() int { return s.numVariants }

// Limits returns the valid coordinate range (−T, +T).
func (s *LayeredStore) Limits() (int, int) { return -s.timeLimit, s.timeLimit }

// At returns P(x, y, t) of the given variant by streaming the layer file
// up to the requested cell.
func (s *LayeredStore) At(x, y, t, variant int) (float64, error) {
	if variant < 0 || variant >= s.numVariants {
		return 0, ErrVariantOutOfRange
	}

	f, err := os.Open(layerFile(s.dir, t))
	if err != nil {
		return 0, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return 0, err
	}
	defer dec.Close()

	side := 2*s.timeLimit + 1
	cell := variant*side*side + (s.timeLimit+x)*side + (s.timeLimit + y)
	// 16-byte header, then 8 bytes per cell.
	if _, err := io.CopyN(io.Discard, dec, int64(16+8*cell)); err != nil {
		return 0, err
	}

	buf := make([]byte, 8)

	return readF64(dec, buf)
}

// FieldTypes reads the label trailer of the family.
func (s *LayeredStore) FieldTypes() (*field.Map, error) {
	f, err := os.Open(fieldTypesFile(s.dir))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	m, err := field.New(s.timeLimit)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 8)
	for x := -s.timeLimit; x <= s.timeLimit; x++ {
		for y := -s.timeLimit; y <= s.timeLimit; y++ {
			label, err := readU64(dec, buf)
			if err != nil {
				return nil, err
			}
			if err := m.SetLabel(x, y, int(label)); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}
