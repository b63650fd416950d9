// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package linger

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"vawter.tech/pacer"
)

const sampleDepth = 2

func TestRecorder(t *testing.T) {
	r := require.New(t)

	rec := NewRecorder(sampleDepth)
	gate := make(chan struct{})
	w := pacer.Start(func(w *pacer.Worker) {
		w.SetRunning(true)
		defer w.SetRunning(false)
		<-gate
	}, nil, time.Millisecond)
	rec.Track(w)

	checkRecorder(r, rec, "linger.TestRecorder")

	close(gate)
	w.Stop()

	// The entry retires once the worker's function has returned.
	r.Eventually(func() bool {
		return len(rec.Callers()) == 0
	}, 5*time.Second, time.Millisecond)
}

func checkRecorder(r *require.Assertions, rec *Recorder, fnName string) {
	callers := rec.Callers()
	r.Len(callers, 1)

	frames := runtime.CallersFrames(callers[0])
	frame, _ := frames.Next()
	r.Contains(frame.Function, fnName)
}
