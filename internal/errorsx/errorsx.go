// Package errorsx extends github.com/pkg/errors with the handful of helpers
// used throughout the codebase.
package errorsx

import (
	"errors"
	"fmt"
	"log"

	perrors "github.com/pkg/errors"
)

// New returns an error with the provided message and a stack trace.
func New(msg string) error {
	return perrors.New(msg)
}

// Errorf formats an error with a stack trace.
func Errorf(format string, args ...any) error {
	return perrors.Errorf(format, args...)
}

// Wrap annotates err with a message. returns nil if err is nil.
func Wrap(err error, msg string) error {
	return perrors.Wrap(err, msg)
}

// Wrapf annotates err with a formatted message. returns nil if err is nil.
func Wrapf(err error, format string, args ...any) error {
	return perrors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stack trace. returns nil if err is nil.
func WithStack(err error) error {
	return perrors.WithStack(err)
}

// Compact returns the first non-nil error.
func Compact(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// Must panics if err is not nil, otherwise returns v.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}

// MaybeLog logs the error if present, ignoring any failure to log.
func MaybeLog(err error) {
	if err == nil {
		return
	}

	_ = log.Output(2, fmt.Sprintln(err))
}

// Ignore returns nil if err matches any of the targets.
func Ignore(err error, targets ...error) error {
	for _, target := range targets {
		if errors.Is(err, target) {
			return nil
		}
	}

	return err
}

type userfriendly struct {
	error
}

func (t userfriendly) UserFriendly() {}

func (t userfriendly) Unwrap() error {
	return t.error
}

// UserFriendly marks the error as safe to display without type information.
func UserFriendly(err error) error {
	if err == nil {
		return nil
	}

	return userfriendly{error: err}
}

type notification struct {
	error
}

func (t notification) Notification() {}

func (t notification) Unwrap() error {
	return t.error
}

// Notification marks the error as informational; it is printed verbatim.
func Notification(err error) error {
	if err == nil {
		return nil
	}

	return notification{error: err}
}
