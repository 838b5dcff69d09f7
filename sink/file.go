package sink

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/egdaemon/wordenum/internal/errorsx"
	"github.com/egdaemon/wordenum/internal/resourcex"
	"github.com/egdaemon/wordenum/powerset"
	"github.com/gofrs/uuid"
)

// File stages the region beside the destination path and renames it into
// place on commit. an existing file at path is left untouched until then.
type File struct {
	path string
	options
}

func NewFile(ctx context.Context, path string, opts ...Option) File {
	return File{
		path:    path,
		options: newoptions(ctx, opts...),
	}
}

func (t File) Allocate(size uint64) (_ powerset.Region, err error) {
	dir := filepath.Dir(t.path)
	available := func() (uint64, error) {
		return resourcex.DiskAvailable(t.ctx, dir)
	}

	if err = preflight(size, t.limit, available); err != nil {
		return nil, err
	}

	staging := filepath.Join(dir, fmt.Sprintf(".%s.%s.partial", filepath.Base(t.path), errorsx.Must(uuid.NewV7())))

	region, err := stage(staging, size)
	if err != nil {
		return nil, powerset.AllocationError{Size: size, Cause: err}
	}

	region.path = t.path
	region.perm = t.perm

	return region, nil
}

// Staging returns the paths of abandoned staging files for path.
func Staging(path string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.*.partial", filepath.Base(path))))
	return matches, errorsx.Wrap(err, "unable to locate staging files")
}
