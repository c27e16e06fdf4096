package file

import "io"

// RandomReader is the per-file read surface handed to the engine. Reads at
// or past end-of-file return an empty result, partial overlap returns the
// available prefix; neither is an error.
type RandomReader interface {
	Read(offset int64, sz int) ([]byte, error)
	Size() int64
	io.Closer
}

// SequentialWriter is the write surface for new or appendable files.
type SequentialWriter interface {
	io.Writer
	Sync() error
	io.Closer
}

var (
	_ RandomReader     = (*RandomAccessFile)(nil)
	_ SequentialWriter = (*WritableFile)(nil)
)
