// Package resourcex probes the capacity of the machine.
package resourcex

import (
	"context"

	"github.com/egdaemon/wordenum/internal/debugx"
	"github.com/egdaemon/wordenum/internal/errorsx"
	"github.com/pbnjay/memory"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

// MemoryAvailable reports the memory that can be allocated without swapping.
// falls back to the free memory reported by the kernel when the detailed
// statistics are unavailable.
func MemoryAvailable(ctx context.Context) uint64 {
	usage, err := mem.VirtualMemoryWithContext(ctx)
	if err == nil {
		return usage.Available
	}

	debugx.Println("unable to retrieve memory usage, falling back to free memory", err)

	return memory.FreeMemory()
}

// DiskAvailable reports the bytes available to unprivileged users on the
// filesystem containing path.
func DiskAvailable(ctx context.Context, path string) (uint64, error) {
	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return 0, errorsx.Wrapf(err, "unable to retrieve disk usage: %s", path)
	}

	return usage.Free, nil
}
