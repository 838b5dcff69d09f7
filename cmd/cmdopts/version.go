package cmdopts

import (
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/egdaemon/wordenum/internal/debugx"
	"github.com/egdaemon/wordenum/internal/errorsx"
	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
)

var (
	Treeish = ""
)

type Version struct{}

func (t Version) Run(ctx *Global) (err error) {
	infos, err := BuildInfo()
	if err != nil {
		return err
	}

	if _, err = fmt.Println(infos); err != nil {
		return err
	}

	if strings.Contains(infos, ".dirty") {
		au := aurora.NewAurora(isatty.IsTerminal(os.Stdout.Fd()))
		if _, err = fmt.Println(au.Red("unsupported modified build")); err != nil {
			return err
		}
	}

	return nil
}

func BuildInfo() (_ string, err error) {
	var (
		ok    bool
		info  *debug.BuildInfo
		ts    time.Time
		id    string
		dirty string
	)

	if info, ok = debug.ReadBuildInfo(); !ok {
		return "", errorsx.Errorf("unable to read build info")
	}

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.modified":
			var (
				_dirty bool
			)
			if _dirty, err = strconv.ParseBool(v.Value); err != nil {
				return "", err
			}

			if _dirty {
				dirty = "dirty"
			}
		case "vcs.revision":
			id = v.Value
		case "vcs.time":
			if ts, err = time.Parse(time.RFC3339, v.Value); err != nil {
				return "", err
			}
		default:
			debugx.Printf("build.%s.%s\n", v.Key, v.Value)
		}
	}

	if id == "" {
		id = Treeish
	}

	return join(info.Main.Path, ts.Format("2006-01-02"), id, dirty), nil
}

// join the non-blank parts with a period.
func join(parts ...string) string {
	present := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			present = append(present, p)
		}
	}

	return strings.Join(present, ".")
}
