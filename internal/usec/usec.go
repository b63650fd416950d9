// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package usec provides wall-clock deadline arithmetic in whole seconds
// and microseconds, mirroring timeval semantics.
package usec

import "time"

// Million is the number of microseconds in one second.
const Million = 1_000_000

// A Time is a wall-clock instant split into whole seconds since the
// Unix epoch and a microsecond remainder in the range [0, Million).
type Time struct {
	Sec    int64
	Micros int64
}

// Add computes the absolute deadline at d past t. The duration is split
// into whole seconds and a microsecond remainder; when the sum of the
// remainders reaches one million microseconds, one second is carried
// and the remainder wraps. Negative durations are not supported.
func (t Time) Add(d time.Duration) Time {
	sec := int64(d / time.Second)
	rem := int64(d%time.Second) / int64(time.Microsecond)

	micros := t.Micros + rem
	if micros >= Million {
		micros -= Million
		sec++
	}
	return Time{Sec: t.Sec + sec, Micros: micros}
}

// Sub returns the duration from o until t.
func (t Time) Sub(o Time) time.Duration {
	return time.Duration(t.Sec-o.Sec)*time.Second +
		time.Duration(t.Micros-o.Micros)*time.Microsecond
}

// fromStdlib derives a Time from the standard library clock.
func fromStdlib() Time {
	now := time.Now()
	return Time{
		Sec:    now.Unix(),
		Micros: int64(now.Nanosecond()) / int64(time.Microsecond),
	}
}
