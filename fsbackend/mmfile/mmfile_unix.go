//go:build unix

// Package mmfile memory-maps object files for the filesystem backend's
// read path, falling back to a full read on platforms without mmap.
package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Map maps the file at path into memory and returns its contents.
func Map(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close() // safe before return; mapping keeps pages alive

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	size := info.Size()
	if size == 0 {
		return []byte{}, func() error { return nil }, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, nil, fmt.Errorf("mmfile: file too large to map (%d bytes)", size)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			return nil
		}
		return err
	}
	return data, cleanup, nil
}
