package file

import (
	"os"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/qingw1230/corefs/utils"
	"github.com/qingw1230/corefs/utils/mmap"
)

// Strategy is how an open RandomAccessFile serves reads. It is decided
// once at open time from the limiter's state and never changes, so a file
// opened past the mmap budget keeps using pread even if slots free up
// later.
type Strategy int8

const (
	// StrategyMmap serves reads straight out of a read-only mapping.
	StrategyMmap Strategy = iota
	// StrategyPread serves reads with positioned reads on a shared fd.
	StrategyPread
)

func (s Strategy) String() string {
	if s == StrategyMmap {
		return "mmap"
	}
	return "pread"
}

// RandomAccessFile 一个打开的随机读文件，策略在打开时固定
type RandomAccessFile struct {
	strategy Strategy
	size     int64

	// mmap strategy. data stays valid until Close; limiter holds the
	// slot to give back.
	data    []byte
	limiter *Limiter

	// pread strategy. mu serializes positioned reads on the shared fd
	// for the duration of a single read.
	mu sync.Mutex
	fd *os.File
}

// OpenRandomAccessFile opens name for random reads. It asks limiter for a
// mapping slot; if granted, the whole file is mapped read-only and the
// descriptor is closed, otherwise reads fall back to pread on the single
// shared descriptor. Running out of slots is not an error.
func OpenRandomAccessFile(name string, limiter *Limiter) (*RandomAccessFile, error) {
	fd, err := openFile(name, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	fi, sErr := fd.Stat()
	if sErr != nil {
		_ = fd.Close()
		return nil, errors.Wrapf(sErr, "cannot stat file: %s", name)
	}
	size := fi.Size()

	if !limiter.TryAcquire() {
		return &RandomAccessFile{strategy: StrategyPread, size: size, fd: fd}, nil
	}

	r := &RandomAccessFile{strategy: StrategyMmap, size: size, limiter: limiter}
	if size > 0 {
		// mmap(2) rejects zero-length mappings, so empty files keep
		// data nil and reads bottom out on the size check.
		data, mErr := mmap.Mmap(fd, false, size)
		if mErr != nil {
			limiter.Release()
			_ = fd.Close()
			return nil, errors.Wrapf(mErr, "while mmapping %s with size: %d", name, size)
		}
		r.data = data
	}
	// The mapping keeps the file pages alive on its own; only the pread
	// strategy needs the descriptor past this point.
	if cErr := fd.Close(); cErr != nil {
		_ = r.Close()
		return nil, errors.Wrapf(cErr, "while closing %s after mmap", name)
	}
	return r, nil
}

// Read returns up to sz bytes starting at offset. Reads past end-of-file
// return the available prefix, reads at or beyond end-of-file return an
// empty result; neither is an error, under either strategy. For the mmap
// strategy the returned slice aliases the mapping and is valid only until
// Close.
func (r *RandomAccessFile) Read(offset int64, sz int) ([]byte, error) {
	if offset < 0 {
		return nil, errors.Errorf("negative read offset: %d", offset)
	}
	if r.strategy == StrategyPread {
		return r.pread(offset, sz)
	}
	if r.limiter == nil {
		return nil, utils.ErrClosed
	}
	if offset >= r.size || sz <= 0 {
		return []byte{}, nil
	}
	if rem := r.size - offset; int64(sz) > rem {
		sz = int(rem)
	}
	return r.data[offset : offset+int64(sz)], nil
}

func (r *RandomAccessFile) pread(offset int64, sz int) ([]byte, error) {
	if r.fd == nil {
		return nil, utils.ErrClosed
	}
	// size was captured at open so both strategies agree on where the
	// file ends.
	if offset >= r.size || sz <= 0 {
		return []byte{}, nil
	}
	if rem := r.size - offset; int64(sz) > rem {
		sz = int(rem)
	}
	buf := make([]byte, sz)
	r.mu.Lock()
	n, err := unix.Pread(int(r.fd.Fd()), buf, offset)
	r.mu.Unlock()
	if err != nil {
		return nil, errors.Wrapf(err, "while pread %s at offset %d", r.fd.Name(), offset)
	}
	return buf[:n], nil
}

// Size is the file length observed at open time.
func (r *RandomAccessFile) Size() int64 {
	return r.size
}

// Strategy reports the read strategy fixed at open time.
func (r *RandomAccessFile) Strategy() Strategy {
	return r.strategy
}

// Close tears down whatever the strategy owns and gives a held mapping
// slot back to the limiter exactly once. Closing twice is safe.
func (r *RandomAccessFile) Close() error {
	if r.strategy == StrategyPread {
		if r.fd == nil {
			return nil
		}
		fd := r.fd
		r.fd = nil
		return fd.Close()
	}
	if r.limiter == nil {
		return nil
	}
	data := r.data
	r.data = nil
	r.limiter.Release()
	r.limiter = nil
	if len(data) == 0 {
		return nil
	}
	return utils.Err(mmap.Munmap(data))
}
