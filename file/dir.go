package file

import (
	"os"

	"github.com/pkg/errors"
)

// ListDir returns the names of every entry under path, including the "."
// and ".." pseudo-entries the kernel's enumeration produces. The Go
// runtime strips them from getdents results, so they are put back here;
// callers that want only real entries filter them out themselves. No
// ordering is guaranteed.
func ListDir(path string) ([]string, error) {
	d, err := openFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer d.Close()
	names, err := d.Readdirnames(-1)
	if err != nil {
		return nil, errors.Wrapf(err, "while listing %s", path)
	}
	return append(names, ".", ".."), nil
}
