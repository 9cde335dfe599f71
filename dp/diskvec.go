package dp

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// DiskVec is a lazily loading vector of scalar programs stored as
// dp_%d.zst files in one directory (the layout written by
// ComputeManySave). Loading a variant decompresses its whole file; the
// most recently used program is cached so repeated lookups into the same
// variant stay cheap.
type DiskVec struct {
	dir       string
	n         int
	timeLimit int

	mu        sync.Mutex
	cachedIdx int
	cached    *Program
}

// vecFile names the file of variant i.
func vecFile(dir string, i int) string {
	return filepath.Join(dir, fmt.Sprintf("dp_%d.zst", i))
}

// OpenDiskVec opens a program-vector directory, counting its variants
// and reading the first file's header for the coordinate range.
func OpenDiskVec(dir string) (*DiskVec, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	n := 0
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".zst" {
			n++
		}
	}
	if n == 0 {
		return nil, ErrVariantOutOfRange
	}

	timeLimit, err := readHeaderTimeLimit(vecFile(dir, 0))
	if err != nil {
		return nil, err
	}

	return &DiskVec{dir: dir, n: n, timeLimit: timeLimit, cachedIdx: -1}, nil
}

// readHeaderTimeLimit decompresses only the leading u64 of a program file.
func readHeaderTimeLimit(filename string) (int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return 0, err
	}
	defer dec.Close()

	v, err := readU64(dec, make([]byte, 8))

	return int(v), err
}

// Len returns the number of variants.
func (v *DiskVec) Len() int { return v.n }

// Limits returns the coordinate range (−T, +T) of the stored programs.
func (v *DiskVec) Limits() (int, int) { return -v.timeLimit, v.timeLimit }

// Get loads variant i, serving repeats of the last index from cache.
func (v *DiskVec) Get(i int) (*Program, error) {
	if i < 0 || i >= v.n {
		return nil, ErrVariantOutOfRange
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.cachedIdx == i {
		return v.cached, nil
	}

	p, err := Load(vecFile(v.dir, i))
	if err != nil {
		return nil, err
	}
	v.cachedIdx, v.cached = i, p

	return p, nil
}
