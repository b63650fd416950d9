// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pacer

import (
	"errors"
	"log/slog"

	"golang.org/x/time/rate"
)

// An Option adjusts the behavior of a [Worker] under construction.
type Option func(*Worker)

// WithLogger overrides the destination for warnings about abnormal
// shutdown conditions and recovered panics. The default is
// [slog.Default].
func WithLogger(l *slog.Logger) Option {
	return func(w *Worker) { w.log = l }
}

// WithName assigns a name to the worker for use in log output.
func WithName(name string) Option {
	return func(w *Worker) { w.name = name }
}

// WithPlainSleep replaces the deadline-based wait with a plain,
// uninterruptible-to-proceed sleep of the configured interval. On this
// path a stop request arriving mid-sleep reports as an interruption:
// [Worker.Wait] returns false immediately instead of waking to perform
// a final unit of work.
func WithPlainSleep() Option {
	return func(w *Worker) { w.plainSleep = true }
}

// WithRateLimit paces the worker through a token bucket of r events per
// second with the given burst size, instead of the fixed timeout. A
// stop request interrupts a blocked acquisition, which then reports
// false. WithRateLimit panics unless both arguments are positive.
func WithRateLimit(r float64, burst int) Option {
	if r <= 0 || burst <= 0 {
		panic(errors.New("pacer: rate and burst must be greater than zero"))
	}
	l := rate.NewLimiter(rate.Limit(r), burst)
	return func(w *Worker) { w.limiter = l }
}
