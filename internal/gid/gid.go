// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package gid resolves the identity of the calling goroutine.
package gid

import (
	"bytes"
	"runtime"
	"strconv"
)

var header = []byte("goroutine ")

// Current returns the runtime's id for the calling goroutine, or zero
// if it cannot be determined. The id is parsed from the stack-trace
// header, which is the only portable way to obtain it.
func Current() int64 {
	var buf [64]byte
	stack := buf[:runtime.Stack(buf[:], false)]
	stack = bytes.TrimPrefix(stack, header)
	idx := bytes.IndexByte(stack, ' ')
	if idx < 0 {
		return 0
	}
	id, err := strconv.ParseInt(string(stack[:idx]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
