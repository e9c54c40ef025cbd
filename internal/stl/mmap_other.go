//go:build !unix

package stl

import (
	"io"
	"os"
)

// mapFile reads f fully into memory on platforms without mmap support.
func mapFile(f *os.File) ([]byte, func() error, error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, err
	}
	return data, nil, nil
}
