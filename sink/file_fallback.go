//go:build !unix

package sink

import (
	"os"

	"github.com/egdaemon/wordenum/internal/errorsx"
)

// staged buffers the region in memory; the staging file is written on commit.
type staged struct {
	path    string
	perm    os.FileMode
	staging string
	data    []byte
}

func stage(path string, size uint64) (_ *staged, err error) {
	// claim the staging name so concurrent runs can not collide.
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return nil, errorsx.Wrapf(err, "unable to create staging file: %s", path)
	}

	if err = f.Close(); err != nil {
		return nil, errorsx.Wrapf(err, "unable to create staging file: %s", path)
	}

	return &staged{staging: path, data: make([]byte, size)}, nil
}

func (t *staged) Bytes() []byte {
	return t.data
}

func (t *staged) Commit() (err error) {
	if t.data == nil {
		return errorsx.New("output region already released")
	}

	if err = os.WriteFile(t.staging, t.data, 0600); err != nil {
		return errorsx.Wrapf(err, "unable to write staging file: %s", t.staging)
	}
	t.data = nil

	if err = os.Chmod(t.staging, t.perm); err != nil {
		return errorsx.Wrapf(err, "unable to set permissions: %s", t.staging)
	}

	return errorsx.Wrapf(os.Rename(t.staging, t.path), "unable to move output into place: %s", t.path)
}

func (t *staged) Abort() error {
	t.data = nil
	return errorsx.Wrapf(errorsx.Ignore(os.Remove(t.staging), os.ErrNotExist), "unable to remove staging file: %s", t.staging)
}
