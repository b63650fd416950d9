// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

//go:build !linux

package usec

// Now reads the wall clock via the standard library.
func Now() Time {
	return fromStdlib()
}
