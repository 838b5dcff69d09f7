package wordlist_test

import (
	"errors"

	"github.com/egdaemon/wordenum/powerset"
	"github.com/egdaemon/wordenum/wordlist"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func texts(l wordlist.List) (result []string) {
	result = []string{}
	for i := 0; i < l.Len(); i++ {
		result = append(result, string(l.Text(i)))
	}
	return result
}

func formatError(err error) (ferr wordlist.FormatError) {
	Expect(errors.As(err, &ferr)).To(BeTrue(), "expected a format error: %v", err)
	return ferr
}

var _ = Describe("Parse", func() {
	It("should parse the empty list", func() {
		l, err := wordlist.Parse([]byte("0\n"))
		Expect(err).To(Succeed())
		Expect(l.Len()).To(Equal(0))
	})

	It("should locate each element without copying", func() {
		data := []byte("3\nfoo\nboo\nbar\n")
		l, err := wordlist.Parse(data)
		Expect(err).To(Succeed())
		Expect(l.Spans).To(Equal([]powerset.Span{
			{Offset: 2, Length: 3},
			{Offset: 6, Length: 3},
			{Offset: 10, Length: 3},
		}))
		Expect(&l.Data[0]).To(BeIdenticalTo(&data[0]))
		Expect(texts(l)).To(Equal([]string{"foo", "boo", "bar"}))
	})

	It("should preserve spaces and empty elements", func() {
		l, err := wordlist.Parse([]byte("3\n a b \n\nc\n"))
		Expect(err).To(Succeed())
		Expect(texts(l)).To(Equal([]string{" a b ", "", "c"}))
	})

	It("should keep duplicate elements", func() {
		l, err := wordlist.Parse([]byte("2\nx\nx\n"))
		Expect(err).To(Succeed())
		Expect(texts(l)).To(Equal([]string{"x", "x"}))
	})

	It("should append a missing final line feed without touching the input", func() {
		data := []byte("2\ncar\ntoy")
		l, err := wordlist.Parse(data)
		Expect(err).To(Succeed())
		Expect(texts(l)).To(Equal([]string{"car", "toy"}))
		Expect(string(data)).To(Equal("2\ncar\ntoy"))
		Expect(string(l.Data)).To(Equal("2\ncar\ntoy\n"))
	})

	It("should accept a bare count without a line feed", func() {
		l, err := wordlist.Parse([]byte("0"))
		Expect(err).To(Succeed())
		Expect(l.Len()).To(Equal(0))
	})

	DescribeTable("malformed input",
		func(input string, line int) {
			_, err := wordlist.Parse([]byte(input))
			Expect(formatError(err).Line).To(Equal(line))
		},
		Entry("empty input", "", 0),
		Entry("empty count", "\nfoo\n", 1),
		Entry("negative count", "-1\n", 1),
		Entry("signed count", "+1\nfoo\n", 1),
		Entry("padded count", " 1\nfoo\n", 1),
		Entry("trailing whitespace", "1 \nfoo\n", 1),
		Entry("carriage return", "1\r\nfoo\r\n", 1),
		Entry("hexadecimal", "0x1\nfoo\n", 1),
		Entry("out of range", "99999999999999999999999\n", 1),
		Entry("too few elements", "3\nfoo\nbar\n", 0),
		Entry("huge count", "18446744073709551615\nfoo\n", 0),
		Entry("too many elements", "1\nfoo\nbar\n", 3),
		Entry("trailing blank line", "1\nfoo\n\n", 3),
	)

	Context("strict", func() {
		It("should reject a missing final line feed", func() {
			_, err := wordlist.Parse([]byte("2\ncar\ntoy"), wordlist.OptionStrict(true))
			Expect(formatError(err).Line).To(Equal(3))
		})

		It("should reject non printable bytes", func() {
			_, err := wordlist.Parse([]byte("2\ncar\nt\toy\n"), wordlist.OptionStrict(true))
			ferr := formatError(err)
			Expect(ferr.Line).To(Equal(3))
			Expect(ferr.Error()).To(ContainSubstring("0x09"))
		})

		It("should accept well formed input", func() {
			l, err := wordlist.Parse([]byte("2\ncar\ntoy\n"), wordlist.OptionStrict(true))
			Expect(err).To(Succeed())
			Expect(texts(l)).To(Equal([]string{"car", "toy"}))
		})
	})
})
