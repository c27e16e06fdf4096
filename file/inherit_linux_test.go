package file

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// fdForPath walks /proc/self/fd and resolves each descriptor back to its
// filesystem path, returning the one matching path.
func fdForPath(t *testing.T, path string) int {
	t.Helper()
	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	abs, err = filepath.EvalSymlinks(abs)
	require.NoError(t, err)

	entries, err := os.ReadDir("/proc/self/fd")
	require.NoError(t, err)
	for _, e := range entries {
		link, err := os.Readlink(filepath.Join("/proc/self/fd", e.Name()))
		if err != nil {
			continue
		}
		if link == abs {
			n, err := strconv.Atoi(e.Name())
			require.NoError(t, err)
			return n
		}
	}
	t.Fatalf("no open descriptor for %s", abs)
	return -1
}

func assertNonInheritable(t *testing.T, path string) {
	t.Helper()
	fd := fdForPath(t, path)
	flags, err := unix.FcntlInt(uintptr(fd), unix.F_GETFD, 0)
	require.NoError(t, err)
	assert.NotZero(t, flags&unix.FD_CLOEXEC, "descriptor for %s would be inherited by a child", path)
}

func TestHandleNotInheritedRandomAccess(t *testing.T) {
	clearDir()
	path := writeTestFile(t, "handle_not_inherited.txt", []byte("0123456789"))

	// Exhaust the budget so the descriptor stays open for inspection;
	// the mmap strategy closes its descriptor right after mapping.
	limiter := NewLimiter(0)
	f, err := OpenRandomAccessFile(path, limiter)
	require.NoError(t, err)
	require.Equal(t, StrategyPread, f.Strategy())
	assertNonInheritable(t, path)
	require.NoError(t, f.Close())
}

func TestHandleNotInheritedWriter(t *testing.T) {
	clearDir()
	path := filepath.Join(testDir, "handle_not_inherited_writer.txt")

	w, err := NewWritableFile(path)
	require.NoError(t, err)
	_, err = w.Write([]byte("0123456789"))
	require.NoError(t, err)
	assertNonInheritable(t, path)
	require.NoError(t, w.Close())
}

func TestHandleNotInheritedLogger(t *testing.T) {
	clearDir()
	path := filepath.Join(testDir, "handle_not_inherited_logger.txt")

	lg, err := NewLogger(path)
	require.NoError(t, err)
	lg.Printf("open")
	assertNonInheritable(t, path)
	require.NoError(t, lg.Close())
}
