//go:build unix

package sink

import (
	"os"
	"path/filepath"

	"github.com/egdaemon/wordenum/internal/errorsx"
	"golang.org/x/sys/unix"
)

// staged is a file mapped read/write into memory.
type staged struct {
	path    string
	perm    os.FileMode
	staging string
	f       *os.File
	data    []byte
}

func stage(path string, size uint64) (_ *staged, err error) {
	var (
		f *os.File
	)

	if f, err = os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0600); err != nil {
		return nil, errorsx.Wrapf(err, "unable to create staging file: %s", path)
	}

	r := &staged{staging: path, f: f, data: []byte{}}

	if err = reserve(f, int64(size)); err != nil {
		errorsx.MaybeLog(r.Abort())
		return nil, errorsx.Wrapf(err, "unable to reserve %d bytes: %s", size, path)
	}

	if size == 0 {
		return r, nil
	}

	if r.data, err = unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED); err != nil {
		r.data = nil
		errorsx.MaybeLog(r.Abort())
		return nil, errorsx.Wrapf(err, "unable to map staging file: %s", path)
	}

	return r, nil
}

func (t *staged) Bytes() []byte {
	return t.data
}

func (t *staged) Commit() (err error) {
	if t.f == nil {
		return errorsx.New("output region already released")
	}

	if len(t.data) > 0 {
		if err = unix.Msync(t.data, unix.MS_SYNC); err != nil {
			return errorsx.Wrapf(err, "unable to flush staging file: %s", t.staging)
		}
	}

	if err = t.f.Sync(); err != nil {
		return errorsx.Wrapf(err, "unable to sync staging file: %s", t.staging)
	}

	if err = t.f.Chmod(t.perm); err != nil {
		return errorsx.Wrapf(err, "unable to set permissions: %s", t.staging)
	}

	if err = t.release(); err != nil {
		return err
	}

	if err = os.Rename(t.staging, t.path); err != nil {
		return errorsx.Wrapf(err, "unable to move output into place: %s", t.path)
	}

	return syncdir(filepath.Dir(t.path))
}

// syncdir persists directory entries, such as a completed rename.
func syncdir(dir string) (err error) {
	d, err := os.Open(dir)
	if err != nil {
		return errorsx.Wrapf(err, "unable to open directory: %s", dir)
	}
	defer func() { errorsx.MaybeLog(errorsx.Wrapf(d.Close(), "unable to close directory: %s", dir)) }()

	return errorsx.Wrapf(d.Sync(), "unable to sync directory: %s", dir)
}

func (t *staged) Abort() error {
	return errorsx.Compact(
		t.release(),
		errorsx.Wrapf(errorsx.Ignore(os.Remove(t.staging), os.ErrNotExist), "unable to remove staging file: %s", t.staging),
	)
}

// release unmaps and closes the staging file. safe to call repeatedly.
func (t *staged) release() (err error) {
	if len(t.data) > 0 {
		err = errorsx.Wrapf(unix.Munmap(t.data), "unable to unmap staging file: %s", t.staging)
	}
	t.data = nil

	if t.f != nil {
		err = errorsx.Compact(err, errorsx.Wrapf(t.f.Close(), "unable to close staging file: %s", t.staging))
	}
	t.f = nil

	return err
}
