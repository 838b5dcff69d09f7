package bytesx

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"
	"github.com/egdaemon/wordenum/internal/errorsx"
)

type Unit int64

func (t Unit) Format(f fmt.State, verb rune) {
	div := int64(1)
	suffix := ""
	switch {
	case t > EiB:
		div = EiB
		suffix = "e"
	case t > PiB:
		div = PiB
		suffix = "p"
	case t > TiB:
		div = TiB
		suffix = "t"
	case t > GiB:
		div = GiB
		suffix = "g"
	case t > MiB:
		div = MiB
		suffix = "m"
	case t > KiB:
		div = KiB
		suffix = "k"
	}

	f.Write([]byte(fmt.Sprintf("%d%s", uint64(float64(t)/float64(div)), suffix)))
}

// Decode allows units to be specified on the command line as "64MiB", "1gb", "4096", etc.
func (t *Unit) Decode(ctx *kong.DecodeContext) (err error) {
	var (
		raw    string
		parsed uint64
	)

	if err = ctx.Scan.PopValueInto("size", &raw); err != nil {
		return err
	}

	if parsed, err = humanize.ParseBytes(raw); err != nil {
		return errorsx.Wrapf(err, "invalid byte size '%s'", raw)
	}

	*t = Unit(parsed)

	return nil
}

// base 2 byte units
const (
	_   Unit = iota
	KiB      = 1 << (10 * iota)
	MiB
	GiB
	TiB
	PiB
	EiB
)
