package file

import (
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// WritableFile is a sequential writer for files the engine produces. It
// keeps a running xxhash64 of every byte appended so the engine can stamp
// block checksums without a second read pass.
type WritableFile struct {
	fd     *os.File
	digest *xxhash.Digest
}

// NewWritableFile creates (or truncates) name for sequential writing.
func NewWritableFile(name string) (*WritableFile, error) {
	return openWritable(name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY)
}

// NewAppendableFile is like NewWritableFile but keeps existing contents.
func NewAppendableFile(name string) (*WritableFile, error) {
	return openWritable(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY)
}

func openWritable(name string, flag int) (*WritableFile, error) {
	fd, err := openFile(name, flag, 0666)
	if err != nil {
		return nil, err
	}
	return &WritableFile{fd: fd, digest: xxhash.New()}, nil
}

func (w *WritableFile) Write(p []byte) (int, error) {
	n, err := w.fd.Write(p)
	_, _ = w.digest.Write(p[:n])
	if err != nil {
		return n, errors.Wrapf(err, "while writing %s", w.fd.Name())
	}
	return n, nil
}

// Sum64 is the xxhash64 of everything written so far.
func (w *WritableFile) Sum64() uint64 {
	return w.digest.Sum64()
}

func (w *WritableFile) Sync() error {
	return w.fd.Sync()
}

func (w *WritableFile) Close() error {
	return w.fd.Close()
}
