package powerset

import "github.com/egdaemon/wordenum/internal/errorsx"

const separator = ", "

// Writer renders combinations into a destination region sized by Estimate.
// The cursor only moves forward.
type Writer struct {
	dst    []byte
	src    []byte
	spans  []Span
	cursor int
}

func NewWriter(dst []byte, src []byte, spans []Span) *Writer {
	return &Writer{
		dst:   dst,
		src:   src,
		spans: spans,
	}
}

// Emit writes {e_i1, e_i2, ...}\n for the given element indices.
// panics if the destination is too small, the estimate is authoritative.
func (t *Writer) Emit(combination []int) {
	t.put('{')
	for i, idx := range combination {
		if i > 0 {
			t.write(separator)
		}
		s := t.spans[idx]
		t.copy(t.src[s.Offset : s.Offset+s.Length])
	}
	t.put('}')
	t.put('\n')
}

// Offset is the number of bytes written so far.
func (t *Writer) Offset() int {
	return t.cursor
}

func (t *Writer) put(b byte) {
	t.reserve(1)
	t.dst[t.cursor] = b
	t.cursor++
}

func (t *Writer) write(s string) {
	t.reserve(len(s))
	t.cursor += copy(t.dst[t.cursor:], s)
}

func (t *Writer) copy(b []byte) {
	t.reserve(len(b))
	t.cursor += copy(t.dst[t.cursor:], b)
}

func (t *Writer) reserve(n int) {
	if t.cursor+n > len(t.dst) {
		panic(errorsx.Errorf("output cursor %d + %d exceeds the allocated %d bytes", t.cursor, n, len(t.dst)))
	}
}
