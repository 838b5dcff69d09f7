package sink

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// reserve allocates the blocks up front so writes to the mapping can not fail
// with SIGBUS when the filesystem fills up.
func reserve(f *os.File, size int64) error {
	if size == 0 {
		return nil
	}

	err := unix.Fallocate(int(f.Fd()), 0, 0, size)
	if errors.Is(err, unix.EOPNOTSUPP) || errors.Is(err, unix.ENOSYS) {
		return f.Truncate(size)
	}

	return err
}
