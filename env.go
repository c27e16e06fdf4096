package corefs

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/qingw1230/corefs/file"
)

// DefaultMmapLimit is the mapping budget used when Options carries none.
const DefaultMmapLimit = 4

// Env is the storage engine's window onto the file system. It owns the
// process-wide mapping budget and hands out handles whose descriptors a
// child process can never inherit. Every file name is resolved against
// the env's working directory.
type Env struct {
	workDir     string
	mmapLimiter *file.Limiter
}

// OpenEnv creates the working directory if needed and builds the env's
// mapping budget from opt.MmapLimit.
func OpenEnv(opt *Options) (*Env, error) {
	if err := os.MkdirAll(opt.WorkDir, 0755); err != nil {
		return nil, errors.Wrapf(err, "unable to create dir: %s", opt.WorkDir)
	}
	limit := opt.MmapLimit
	if limit <= 0 {
		limit = DefaultMmapLimit
	}
	return &Env{
		workDir:     opt.WorkDir,
		mmapLimiter: file.NewLimiter(limit),
	}, nil
}

func (e *Env) path(name string) string {
	return filepath.Join(e.workDir, name)
}

// NewRandomAccessFile opens name for random reads. The read strategy is
// chosen once, here, from the env's mapping budget.
func (e *Env) NewRandomAccessFile(name string) (*file.RandomAccessFile, error) {
	return file.OpenRandomAccessFile(e.path(name), e.mmapLimiter)
}

// NewWritableFile creates (or truncates) name for sequential writing.
func (e *Env) NewWritableFile(name string) (*file.WritableFile, error) {
	return file.NewWritableFile(e.path(name))
}

// NewAppendableFile opens name for sequential writing, keeping existing
// contents.
func (e *Env) NewAppendableFile(name string) (*file.WritableFile, error) {
	return file.NewAppendableFile(e.path(name))
}

// NewLogger opens the engine's info log at name.
func (e *Env) NewLogger(name string) (*file.Logger, error) {
	return file.NewLogger(e.path(name))
}

// GetChildren lists every entry under dir, including the "." and ".."
// pseudo-entries the native enumeration produces. An empty dir names the
// working directory itself.
func (e *Env) GetChildren(dir string) ([]string, error) {
	return file.ListDir(e.path(dir))
}

// FileExists reports whether name exists under the working directory.
func (e *Env) FileExists(name string) bool {
	_, err := os.Stat(e.path(name))
	return err == nil
}

// GetFileSize returns the current size of name.
func (e *Env) GetFileSize(name string) (int64, error) {
	fi, err := os.Stat(e.path(name))
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

// DeleteFile removes name.
func (e *Env) DeleteFile(name string) error {
	return os.Remove(e.path(name))
}

// RenameFile renames src to dst, replacing dst if it exists.
func (e *Env) RenameFile(src, dst string) error {
	return os.Rename(e.path(src), e.path(dst))
}

// CreateDir makes a subdirectory under the working directory.
func (e *Env) CreateDir(name string) error {
	return os.Mkdir(e.path(name), 0755)
}

// DeleteDir removes a subdirectory and everything below it.
func (e *Env) DeleteDir(name string) error {
	return os.RemoveAll(e.path(name))
}
