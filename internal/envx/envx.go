// Package envx provides utility functions for extracting information from environment variables
package envx

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/egdaemon/wordenum/internal/errorsx"
)

// Uint64 retrieve an unsigned integer flag from the environment, checks each key in order
// first to parse successfully is returned.
func Uint64(fallback uint64, keys ...string) uint64 {
	return envval(fallback, func(s string) (uint64, error) {
		decoded, err := strconv.ParseUint(s, 10, 64)
		return decoded, errorsx.Wrapf(err, "uint64 '%s' is invalid", s)
	}, keys...)
}

// Boolean retrieve a boolean flag from the environment, checks each key in order
// first to parse successfully is returned.
func Boolean(fallback bool, keys ...string) bool {
	return envval(fallback, func(s string) (bool, error) {
		decoded, err := strconv.ParseBool(s)
		return decoded, errorsx.Wrapf(err, "boolean '%s' is invalid", s)
	}, keys...)
}

// String retrieve a string value from the environment, checks each key in order
// first string found is returned.
func String(fallback string, keys ...string) string {
	return envval(fallback, func(s string) (string, error) {
		// we'll never receive an empty string because envval skips empty strings.
		return s, nil
	}, keys...)
}

// Duration retrieves a time.Duration from the environment, checks each key in order
// first successful parse to a duration is returned.
func Duration(fallback time.Duration, keys ...string) time.Duration {
	return envval(fallback, func(s string) (time.Duration, error) {
		decoded, err := time.ParseDuration(s)
		return decoded, errorsx.Wrapf(err, "time.Duration '%s' is invalid", s)
	}, keys...)
}

func envval[T any](fallback T, parse func(string) (T, error), keys ...string) T {
	for _, k := range keys {
		s := strings.TrimSpace(os.Getenv(k))
		if s == "" {
			continue
		}

		decoded, err := parse(s)
		if err != nil {
			log.Printf("%s stored an invalid value %v\n", k, err)
			continue
		}

		return decoded
	}

	return fallback
}

func Debug(envs ...string) {
	errorsx.MaybeLog(log.Output(2, fmt.Sprintln("DEBUG ENVIRONMENT INITIATED")))
	defer func() { errorsx.MaybeLog(log.Output(3, "DEBUG ENVIRONMENT COMPLETED")) }()
	for _, e := range envs {
		errorsx.MaybeLog(log.Output(2, fmt.Sprintln(e)))
	}
}
