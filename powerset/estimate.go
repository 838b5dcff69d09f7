package powerset

import (
	"math/bits"

	"github.com/egdaemon/wordenum/internal/errorsx"
)

// Span locates a single element within the source bytes.
type Span struct {
	Offset int
	Length int
}

// TotalLength sums the length of every span.
func TotalLength(spans []Span) (total uint64) {
	for _, s := range spans {
		total += uint64(s.Length)
	}

	return total
}

// Phase returns the number of size k combinations and the exact number of bytes
// they render to, given the summed length of all elements.
//
// Every line costs two braces and a line feed, and each of the k-1 gaps costs a
// two byte separator. Each element appears in exactly C(n-1, k-1) of the C(n, k)
// combinations so the element text contributes total * C(n-1, k-1) bytes.
func Phase(t *Table, k int, total uint64) (count uint64, size uint64, err error) {
	n := t.N()

	if k == 0 {
		return 1, 3, nil
	}

	count = t.Query(n, k)

	overhead, err := mul(count, uint64(2*k+1))
	if err != nil {
		return 0, 0, errorsx.Wrapf(err, "phase %d overhead", k)
	}

	payload, err := mul(total, t.Query(n-1, k-1))
	if err != nil {
		return 0, 0, errorsx.Wrapf(err, "phase %d payload", k)
	}

	if size, err = add(overhead, payload); err != nil {
		return 0, 0, errorsx.Wrapf(err, "phase %d size", k)
	}

	return count, size, nil
}

// Estimate computes the exact number of bytes required to render every subset
// of the elements described by spans. len(spans) must equal t.N().
func Estimate(t *Table, spans []Span) (size uint64, err error) {
	if len(spans) != t.N() {
		return 0, errorsx.Errorf("binomial table built for %d elements, received %d", t.N(), len(spans))
	}

	total := TotalLength(spans)

	for k := 0; k <= t.N(); k++ {
		_, psize, err := Phase(t, k, total)
		if err != nil {
			return 0, err
		}

		if size, err = add(size, psize); err != nil {
			return 0, errorsx.Wrap(err, "total size")
		}
	}

	return size, nil
}

func mul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrOverflow
	}

	return lo, nil
}

func add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}

	return sum, nil
}

// Subsets returns the number of subsets of the table's set, 2^n, failing with
// ErrOverflow when n >= 64.
func Subsets(t *Table) (total uint64, err error) {
	for k := 0; k <= t.N(); k++ {
		if total, err = add(total, t.Query(t.N(), k)); err != nil {
			return 0, errorsx.Wrap(err, "subset count")
		}
	}

	return total, nil
}
