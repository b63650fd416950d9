// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

//go:build linux

package usec

import "golang.org/x/sys/unix"

// Now reads the wall clock with gettimeofday, which reports natively in
// timeval form.
func Now() Time {
	var tv unix.Timeval
	if err := unix.Gettimeofday(&tv); err != nil {
		return fromStdlib()
	}
	return Time{Sec: int64(tv.Sec), Micros: int64(tv.Usec)}
}
