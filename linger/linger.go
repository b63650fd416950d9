// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package linger contains a utility for reporting on where lingering
// workers were originally started.
package linger

import (
	"runtime"
	"sync"
	"sync/atomic"

	"vawter.tech/pacer"
)

// This value is sensitive to the code structure.
const callersOffset = 2

// NewRecorder constructs a [Recorder] that samples the call stack at
// the requested depth. A depth of 1 will record the location at which
// [Recorder.Track] was executed.
func NewRecorder(depth int) *Recorder {
	return &Recorder{depth: depth}
}

// A Recorder tracks live [pacer.Worker] instances and records the call
// stack at which they were registered. It is primarily useful for
// testing scenarios, to ensure that no workers outlive a call to
// [pacer.Worker.Stop].
type Recorder struct {
	counter atomic.Uintptr
	data    sync.Map
	depth   int
}

// Callers returns a snapshot of the caller stacks associated with any
// tracked workers whose functions have not yet returned.
func (r *Recorder) Callers() [][]uintptr {
	var ret [][]uintptr
	r.data.Range(func(_, value any) bool {
		ret = append(ret, value.([]uintptr))
		return true
	})
	return ret
}

// Track registers a worker with the Recorder. The entry is retired
// automatically once the worker's function returns. A worker that
// never finishes pins its monitor for the life of the process, which is
// acceptable in the test scenarios this package targets.
func (r *Recorder) Track(w *pacer.Worker) {
	pc := make([]uintptr, r.depth)
	pc = pc[:runtime.Callers(callersOffset, pc)]

	id := r.counter.Add(1)
	r.data.Store(id, pc)

	go func() {
		<-w.Done()
		r.data.Delete(id)
	}()
}
