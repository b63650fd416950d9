// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package usec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddCarries(t *testing.T) {
	a := assert.New(t)

	// A 300,000µs remainder on top of 900,000µs carries one second.
	base := Time{Sec: 100, Micros: 900_000}
	a.Equal(Time{Sec: 101, Micros: 200_000}, base.Add(300*time.Millisecond))
}

func TestAddCarriesAtBoundary(t *testing.T) {
	a := assert.New(t)

	// Exactly one million microseconds is already a whole second.
	base := Time{Sec: 7, Micros: 500_000}
	a.Equal(Time{Sec: 8, Micros: 0}, base.Add(500*time.Millisecond))
}

func TestAddNoCarry(t *testing.T) {
	a := assert.New(t)

	base := Time{Sec: 10, Micros: 100_000}
	a.Equal(Time{Sec: 12, Micros: 400_000}, base.Add(2*time.Second+300*time.Millisecond))
}

func TestAddSplitsSeconds(t *testing.T) {
	a := assert.New(t)

	base := Time{}
	a.Equal(Time{Sec: 1, Micros: 234_567}, base.Add(1234567*time.Microsecond))
}

func TestAddZero(t *testing.T) {
	a := assert.New(t)

	base := Time{Sec: 42, Micros: 999_999}
	a.Equal(base, base.Add(0))
}

func TestSub(t *testing.T) {
	a := assert.New(t)

	base := Time{Sec: 5, Micros: 900_000}
	for _, d := range []time.Duration{
		0,
		time.Microsecond,
		100 * time.Microsecond,
		300 * time.Millisecond,
		time.Second,
		90 * time.Minute,
	} {
		a.Equal(d, base.Add(d).Sub(base))
	}

	// A borrow in the microsecond component.
	a.Equal(200*time.Millisecond,
		Time{Sec: 1, Micros: 100_000}.Sub(Time{Sec: 0, Micros: 900_000}))
}

func TestNow(t *testing.T) {
	a := assert.New(t)

	first := Now()
	second := Now()
	a.Positive(first.Sec)
	a.GreaterOrEqual(first.Micros, int64(0))
	a.Less(first.Micros, int64(Million))
	a.GreaterOrEqual(second.Sub(first), time.Duration(0))
}
