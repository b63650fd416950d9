// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package pacer provides a cancellable, timed pacing primitive for a
// single background worker goroutine.
//
// A [Worker] launches one goroutine that runs a caller-supplied
// function and repeatedly blocks it in a timed wait until either the
// configured interval elapses or a stop request arrives. The worker
// function is the only code that runs on the goroutine; the Worker
// supplies the scheduling skeleton around it.
//
// # Starting a worker
//
// Use [Start] to construct a Worker; the goroutine begins immediately.
// The opaque payload is recoverable inside the worker function via
// [Worker.Payload].
//
//	w := pacer.Start(func(w *pacer.Worker) {
//	    w.SetRunning(true)
//	    defer w.SetRunning(false)
//	    stats := w.Payload().(*Stats)
//	    for {
//	        stats.Sample()
//	        if !w.Wait() {
//	            return
//	        }
//	    }
//	}, stats, 100*time.Millisecond)
//
// # Pacing and cancellation
//
// [Worker.Wait] is simultaneously the rate limiter and the cancellation
// check: it returns true when the worker may proceed with its next unit
// of work and false when the loop must exit. Cancellation is
// cooperative — a worker that stops calling Wait cannot be interrupted,
// and [Worker.Stop] will block until its function returns on its own.
//
// The interval may be adjusted at any time with [Worker.SetTimeout];
// the new value applies to the next Wait call, never to one already in
// flight. [WithRateLimit] substitutes a token bucket for the fixed
// interval, and [WithPlainSleep] selects a degraded wait for
// environments where a deadline-based wait cannot be trusted.
//
// # Stopping
//
// [Worker.Stop] signals termination, wakes a blocked Wait, and then
// blocks until the worker function has returned, so the Worker and
// anything it references may be safely discarded afterward. Stop is
// idempotent and tolerates a worker that has already exited on its own.
// [StopOnReceive] wires a stop request to any channel, such as one
// registered with [os/signal.Notify].
//
// # Observability
//
// [Worker.Stopping] and [Worker.Done] expose the stop request and the
// worker's exit as channels, [Worker.StoppingContext] adapts the stop
// signal for context-aware APIs, and the [linger] sub-package helps
// tests find workers that outlive their welcome. Abnormal conditions —
// a panicking worker function or a Stop call issued from the worker
// itself — are reported through [log/slog].
package pacer
