package powerset

import (
	"math/bits"

	"github.com/egdaemon/wordenum/internal/errorsx"
)

// ErrOverflow is returned when a count or size does not fit in 64 bits.
var ErrOverflow = errorsx.New("unsigned 64-bit overflow")

// MaxElements is the largest set size whose binomial coefficients fit in a
// uint64. C(68, 34) does not.
const MaxElements = 67

// Table holds C(r, c) for every 0 <= c <= r <= n, built from Pascal's triangle.
// Row r starts at offset r*(r+1)/2.
type Table struct {
	n       int
	entries []uint64
}

// NewTable builds the binomial table for a set of n elements.
// any n above MaxElements fails with ErrOverflow before the table is allocated.
func NewTable(n int) (_ *Table, err error) {
	if n < 0 {
		return nil, errorsx.Errorf("negative set size %d", n)
	}

	if n > MaxElements {
		return nil, errorsx.Wrapf(ErrOverflow, "C(%d, %d)", n, n/2)
	}

	t := &Table{
		n:       n,
		entries: make([]uint64, (n+1)*(n+2)/2),
	}

	for r := 0; r <= n; r++ {
		row, prev := t.row(r), t.row(r-1)
		row[0], row[r] = 1, 1
		for c := 1; c < r; c++ {
			sum, carry := bits.Add64(prev[c-1], prev[c], 0)
			if carry != 0 {
				return nil, errorsx.Wrapf(ErrOverflow, "C(%d, %d)", r, c)
			}
			row[c] = sum
		}
	}

	return t, nil
}

func (t *Table) row(r int) []uint64 {
	if r < 0 {
		return nil
	}
	offset := r * (r + 1) / 2
	return t.entries[offset : offset+r+1]
}

// N is the set size the table was built for.
func (t *Table) N() int {
	return t.n
}

// Query returns C(n, k). requires 0 <= k <= n <= t.N().
func (t *Table) Query(n, k int) uint64 {
	if n < 0 || n > t.n || k < 0 || k > n {
		panic(errorsx.Errorf("binomial query out of range: C(%d, %d) with table size %d", n, k, t.n))
	}

	return t.row(n)[k]
}
