//go:build unix

package stl

import (
	"os"

	"golang.org/x/sys/unix"
)

// mapFile maps f read-only into memory. The returned cleanup releases
// the mapping. Empty files are returned as an empty slice without a
// mapping.
func mapFile(f *os.File) ([]byte, func() error, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	if fi.Size() == 0 {
		return nil, nil, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(fi.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return unix.Munmap(data) }, nil
}
