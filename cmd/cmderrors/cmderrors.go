package cmderrors

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
)

type notification interface {
	Notification()
}

type userfriendly interface {
	UserFriendly()
}

func colors() aurora.Aurora {
	return aurora.NewAurora(isatty.IsTerminal(os.Stderr.Fd()))
}

// Sprint formats the error for display. user friendly errors are printed
// without type information, everything else includes the full stack.
func Sprint(err error) string {
	var (
		nErr notification
		sErr userfriendly
	)

	if errors.As(err, &nErr) {
		return fmt.Sprint(err)
	}

	if errors.As(err, &sErr) {
		return fmt.Sprint(colors().Red("ERROR"), " ", err)
	}

	return fmt.Sprintf("%T - [%+v]", err, err)
}

// LogCause logs the error, formatted by Sprint, and returns it.
func LogCause(err error) error {
	if err == nil {
		return nil
	}

	log.Println(Sprint(err))

	return err
}
