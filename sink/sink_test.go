package sink_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/egdaemon/wordenum/internal/bytesx"
	"github.com/egdaemon/wordenum/internal/testx"
	"github.com/egdaemon/wordenum/powerset"
	"github.com/egdaemon/wordenum/sink"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func allocationError(err error) (aerr powerset.AllocationError) {
	Expect(errors.As(err, &aerr)).To(BeTrue(), "expected an allocation error: %v", err)
	return aerr
}

var _ = Describe("Writer", func() {
	It("should only write on commit", func(ctx context.Context) {
		var buf bytes.Buffer
		region, err := sink.NewWriter(ctx, &buf).Allocate(4)
		Expect(err).To(Succeed())
		Expect(region.Bytes()).To(HaveLen(4))
		copy(region.Bytes(), "{}\n\n")
		Expect(buf.Len()).To(Equal(0))
		Expect(region.Commit()).To(Succeed())
		Expect(buf.String()).To(Equal("{}\n\n"))
		Expect(region.Commit()).ToNot(Succeed())
	})

	It("should discard aborted regions", func(ctx context.Context) {
		var buf bytes.Buffer
		region, err := sink.NewWriter(ctx, &buf).Allocate(3)
		Expect(err).To(Succeed())
		copy(region.Bytes(), "{}\n")
		Expect(region.Abort()).To(Succeed())
		Expect(region.Commit()).ToNot(Succeed())
		Expect(buf.Len()).To(Equal(0))
	})

	It("should refuse allocations above the limit", func(ctx context.Context) {
		_, err := sink.NewWriter(ctx, &bytes.Buffer{}, sink.OptionLimit(bytesx.KiB)).Allocate(bytesx.KiB + 1)
		Expect(allocationError(err).Size).To(Equal(uint64(bytesx.KiB + 1)))
	})

	It("should refuse allocations beyond the address space", func(ctx context.Context) {
		_, err := sink.NewWriter(ctx, &bytes.Buffer{}).Allocate(^uint64(0))
		allocationError(err)
	})
})

var _ = Describe("File", func() {
	It("should move the output into place on commit", func(ctx context.Context) {
		dst := filepath.Join(GinkgoT().TempDir(), "output.txt")
		region, err := sink.NewFile(ctx, dst, sink.OptionPerm(0640)).Allocate(3)
		Expect(err).To(Succeed())
		copy(region.Bytes(), "{}\n")

		staging, err := sink.Staging(dst)
		Expect(err).To(Succeed())
		Expect(staging).To(HaveLen(1))
		Expect(dst).ToNot(BeAnExistingFile())

		Expect(region.Commit()).To(Succeed())
		Expect(testx.ReadString(dst)).To(Equal("{}\n"))

		info, err := os.Stat(dst)
		Expect(err).To(Succeed())
		Expect(info.Mode().Perm()).To(Equal(os.FileMode(0640)))

		staging, err = sink.Staging(dst)
		Expect(err).To(Succeed())
		Expect(staging).To(BeEmpty())
	})

	It("should persist empty regions and their directory entry", func(ctx context.Context) {
		dst := filepath.Join(GinkgoT().TempDir(), "output.txt")
		region, err := sink.NewFile(ctx, dst).Allocate(0)
		Expect(err).To(Succeed())
		Expect(region.Bytes()).To(BeEmpty())
		Expect(region.Commit()).To(Succeed())
		Expect(dst).To(BeAnExistingFile())
		Expect(testx.ReadString(dst)).To(BeEmpty())
		Expect(region.Commit()).ToNot(Succeed())

		staging, err := sink.Staging(dst)
		Expect(err).To(Succeed())
		Expect(staging).To(BeEmpty())
	})

	It("should leave an existing destination untouched when aborted", func(ctx context.Context) {
		dst := filepath.Join(GinkgoT().TempDir(), "output.txt")
		Expect(os.WriteFile(dst, []byte("previous\n"), 0600)).To(Succeed())

		region, err := sink.NewFile(ctx, dst).Allocate(16)
		Expect(err).To(Succeed())
		copy(region.Bytes(), "{partial")
		Expect(testx.ReadString(dst)).To(Equal("previous\n"))

		Expect(region.Abort()).To(Succeed())
		Expect(region.Abort()).To(Succeed())
		Expect(testx.ReadString(dst)).To(Equal("previous\n"))

		staging, err := sink.Staging(dst)
		Expect(err).To(Succeed())
		Expect(staging).To(BeEmpty())
	})

	It("should replace an existing destination on commit", func(ctx context.Context) {
		dst := filepath.Join(GinkgoT().TempDir(), "output.txt")
		Expect(os.WriteFile(dst, []byte("previous contents that are longer\n"), 0600)).To(Succeed())

		region, err := sink.NewFile(ctx, dst).Allocate(3)
		Expect(err).To(Succeed())
		copy(region.Bytes(), "{}\n")
		Expect(region.Commit()).To(Succeed())
		Expect(testx.ReadString(dst)).To(Equal("{}\n"))
	})

	It("should refuse allocations above the limit without staging", func(ctx context.Context) {
		dst := filepath.Join(GinkgoT().TempDir(), "output.txt")
		_, err := sink.NewFile(ctx, dst, sink.OptionLimit(2)).Allocate(3)
		allocationError(err)

		staging, err := sink.Staging(dst)
		Expect(err).To(Succeed())
		Expect(staging).To(BeEmpty())
	})

	It("should fail when the directory does not exist", func(ctx context.Context) {
		dst := filepath.Join(GinkgoT().TempDir(), "missing", "output.txt")
		_, err := sink.NewFile(ctx, dst).Allocate(3)
		allocationError(err)
	})

	It("should hold the generated output", func(ctx context.Context) {
		dst := filepath.Join(GinkgoT().TempDir(), "output.txt")
		src := []byte("foobooba")
		spans := []powerset.Span{{Offset: 0, Length: 3}, {Offset: 3, Length: 3}, {Offset: 6, Length: 2}}

		written, err := powerset.Generate(src, spans, sink.NewFile(ctx, dst))
		Expect(err).To(Succeed())
		Expect(testx.ReadString(dst)).To(Equal("{}\n{foo}\n{boo}\n{ba}\n{foo, boo}\n{foo, ba}\n{boo, ba}\n{foo, boo, ba}\n"))

		info, err := os.Stat(dst)
		Expect(err).To(Succeed())
		Expect(uint64(info.Size())).To(Equal(written))
	})
})
