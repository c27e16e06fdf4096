package mmap

import "os"

// Mmap memory-maps fd up to sz bytes.
func Mmap(fd *os.File, writable bool, sz int64) ([]byte, error) {
	return mmap(fd, writable, sz)
}

// Munmap removes a mapping created by Mmap.
func Munmap(b []byte) error {
	return munmap(b)
}
