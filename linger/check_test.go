// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package linger

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"vawter.tech/pacer"
)

// recordingT captures CheckClean output without failing a real test.
type recordingT struct {
	messages []string
}

func (r *recordingT) Errorf(format string, args ...any) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func TestCheckCleanQuiet(t *testing.T) {
	a := assert.New(t)

	fake := &recordingT{}
	CheckClean(fake, NewRecorder(sampleDepth))
	a.Empty(fake.messages)
}

func TestCheckCleanReports(t *testing.T) {
	a := assert.New(t)

	rec := NewRecorder(sampleDepth)
	gate := make(chan struct{})
	w := pacer.Start(func(w *pacer.Worker) {
		w.SetRunning(true)
		defer w.SetRunning(false)
		<-gate
	}, nil, time.Millisecond)
	rec.Track(w)

	fake := &recordingT{}
	CheckClean(fake, rec)
	a.NotEmpty(fake.messages)
	a.Contains(fake.messages[0], "lingering workers")

	close(gate)
	w.Stop()
}
