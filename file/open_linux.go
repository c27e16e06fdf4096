package file

import (
	"os"

	"golang.org/x/sys/unix"
)

// openFile opens path with O_CLOEXEC set atomically, so there is no window
// in which a forked child could inherit the descriptor. Every open in this
// package goes through here.
func openFile(path string, flag int, perm os.FileMode) (*os.File, error) {
	fd, err := unix.Open(path, flag|unix.O_CLOEXEC, uint32(perm.Perm()))
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: path, Err: err}
	}
	return os.NewFile(uintptr(fd), path), nil
}
