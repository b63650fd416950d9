// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package gid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrent(t *testing.T) {
	a := assert.New(t)

	self := Current()
	a.Positive(self)
	a.Equal(self, Current())

	other := make(chan int64, 1)
	go func() { other <- Current() }()
	a.NotEqual(self, <-other)
}
