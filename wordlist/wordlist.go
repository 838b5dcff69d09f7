// Package wordlist parses the input format: a line holding the element count n
// followed by exactly n line feed terminated elements.
//
//	3
//	car
//	toy
//	happy
package wordlist

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/egdaemon/wordenum/internal/errorsx"
	"github.com/egdaemon/wordenum/powerset"
)

// FormatError describes malformed input.
type FormatError struct {
	Line   int
	Reason string
}

func (t FormatError) Error() string {
	if t.Line == 0 {
		return fmt.Sprintf("invalid input: %s", t.Reason)
	}

	return fmt.Sprintf("invalid input: line %d: %s", t.Line, t.Reason)
}

func (t FormatError) UserFriendly() {}

func formaterr(line int, format string, args ...any) error {
	return errorsx.WithStack(FormatError{Line: line, Reason: fmt.Sprintf(format, args...)})
}

// List is the parsed input. Spans index into Data.
type List struct {
	Data  []byte
	Spans []powerset.Span
}

// Len is the number of elements.
func (t List) Len() int {
	return len(t.Spans)
}

// Text returns the bytes of the i-th element.
func (t List) Text(i int) []byte {
	s := t.Spans[i]
	return t.Data[s.Offset : s.Offset+s.Length]
}

type options struct {
	strict bool
}

type Option func(*options)

// OptionStrict rejects input missing the final line feed or containing bytes
// outside printable ascii.
func OptionStrict(b bool) Option {
	return func(o *options) {
		o.strict = b
	}
}

// Parse the provided input. data is not modified; when the final line feed is
// missing and strict mode is off a copy with the line feed appended is used.
func Parse(data []byte, opts ...Option) (l List, err error) {
	var (
		o options
		n uint64
	)

	for _, opt := range opts {
		opt(&o)
	}

	if len(data) == 0 {
		return l, formaterr(0, "empty input, expected an element count")
	}

	if data[len(data)-1] != '\n' {
		if o.strict {
			return l, formaterr(bytes.Count(data, []byte{'\n'})+1, "missing final line feed")
		}
		data = append(data[:len(data):len(data)], '\n')
	}

	header := bytes.IndexByte(data, '\n')
	if n, err = count(data[:header]); err != nil {
		return l, err
	}

	// never trust n for sizing, the input may be arbitrarily short.
	remaining := uint64(bytes.Count(data[header+1:], []byte{'\n'}))
	if remaining < n {
		return l, formaterr(0, "expected %d elements, found %d", n, remaining)
	}

	if remaining > n {
		return l, formaterr(int(n)+2, "expected %d elements, found %d lines", n, remaining)
	}

	l = List{
		Data:  data,
		Spans: make([]powerset.Span, 0, int(n)),
	}

	for offset, line := header+1, 2; offset < len(data); line++ {
		end := offset + bytes.IndexByte(data[offset:], '\n')

		if o.strict {
			if idx := nonprintable(data[offset:end]); idx >= 0 {
				return List{}, formaterr(line, "non-printable byte 0x%02x at column %d", data[offset+idx], idx+1)
			}
		}

		l.Spans = append(l.Spans, powerset.Span{Offset: offset, Length: end - offset})
		offset = end + 1
	}

	return l, nil
}

func count(b []byte) (n uint64, err error) {
	if len(b) == 0 {
		return 0, formaterr(1, "missing element count")
	}

	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, formaterr(1, "element count %q is not a non-negative integer", b)
		}
	}

	if n, err = strconv.ParseUint(string(b), 10, 64); err != nil {
		return 0, formaterr(1, "element count %q is out of range", b)
	}

	return n, nil
}

func nonprintable(b []byte) int {
	for i, c := range b {
		if c < 0x20 || c > 0x7e {
			return i
		}
	}

	return -1
}
