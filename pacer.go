// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pacer

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
	"vawter.tech/pacer/internal/gid"
	"vawter.tech/pacer/internal/safe"
	"vawter.tech/pacer/internal/usec"
)

// ErrStopped will be returned from the [context.Context] produced by
// [Worker.StoppingContext] once the worker has been asked to stop.
var ErrStopped = errors.New("stopped")

// Func is the signature of a worker function. It receives the Worker
// that launched it so that it can pace its loop with [Worker.Wait] and
// recover shared state with [Worker.Payload].
//
// The canonical loop is:
//
//	func(w *pacer.Worker) {
//	    w.SetRunning(true)
//	    defer w.SetRunning(false)
//	    for {
//	        // Perform one unit of work.
//	        if !w.Wait() {
//	            return
//	        }
//	    }
//	}
//
// A Func that stops calling Wait can no longer be interrupted;
// [Worker.Stop] will block until it returns on its own.
type Func func(*Worker)

// A Worker owns a single background goroutine and paces it through a
// cancellable, timed wait. The goroutine is launched by [Start] and
// runs until its function returns, which it is expected to do promptly
// once [Worker.Wait] reports false.
//
// All methods on a Worker are safe for concurrent use, though Stop is
// normally the concern of a single owner.
type Worker struct {
	fn      Func
	payload any

	name       string
	log        *slog.Logger
	plainSleep bool
	limiter    *rate.Limiter

	// Single-writer discipline: the owner writes terminated and
	// attached, the worker side writes running. All are read without
	// holding any lock.
	terminated atomic.Bool
	running    atomic.Bool
	attached   atomic.Bool

	timeout  atomic.Int64 // nanoseconds
	workerID atomic.Int64

	stopOnce sync.Once
	stopping chan struct{}
	done     chan struct{}
}

// Start launches a worker goroutine that invokes fn with the returned
// Worker as its argument. The payload is retained verbatim and may be
// recovered inside fn via [Worker.Payload]. The timeout establishes the
// initial pacing interval for [Worker.Wait] and may be adjusted later
// with [Worker.SetTimeout].
//
// Start panics if fn is nil or the timeout is negative; a Worker that
// cannot be constructed correctly must not exist at all.
func Start(fn Func, payload any, timeout time.Duration, opts ...Option) *Worker {
	if fn == nil {
		panic(errors.New("pacer: nil worker function"))
	}
	if timeout < 0 {
		panic(fmt.Errorf("pacer: negative timeout %v", timeout))
	}

	w := &Worker{
		fn:       fn,
		payload:  payload,
		stopping: make(chan struct{}),
		done:     make(chan struct{}),
	}
	w.timeout.Store(int64(timeout))
	w.attached.Store(true)
	for _, opt := range opts {
		opt(w)
	}
	if w.name == "" {
		w.name = "pacer"
	}
	if w.log == nil {
		w.log = slog.Default()
	}

	go w.run()
	return w
}

// run is the spawn wrapper around the worker function. It records the
// goroutine's identity for self-stop detection and raises the done
// notification on exit, even if the function panics.
func (w *Worker) run() {
	w.workerID.Store(gid.Current())
	defer func() {
		w.running.Store(false)
		close(w.done)
	}()
	if err := safe.Call(func() { w.fn(w) }); err != nil {
		w.log.Error("worker function panicked",
			"worker", w.name, "error", err)
	}
}

// Done returns a channel that is closed once the worker function has
// returned.
func (w *Worker) Done() <-chan struct{} { return w.done }

// IsStopping returns true once [Worker.Stop] has been called. See also
// [Worker.Stopping] for a notification-based API.
func (w *Worker) IsStopping() bool { return w.terminated.Load() }

// Payload returns the value passed to [Start], unchanged.
func (w *Worker) Payload() any { return w.payload }

// Running reports the worker-liveness flag maintained via
// [Worker.SetRunning]. It is forced to false once the worker function
// has returned.
func (w *Worker) Running() bool { return w.running.Load() }

// SetRunning maintains the worker-liveness flag. Worker functions
// should set it to true when entering their loop and to false just
// before returning, so that the owner can observe whether the loop is
// still active.
func (w *Worker) SetRunning(running bool) { w.running.Store(running) }

// SetTimeout replaces the pacing interval. The new value takes effect
// on the next call to [Worker.Wait]; a wait already in flight keeps the
// deadline it computed on entry. SetTimeout panics if d is negative.
func (w *Worker) SetTimeout(d time.Duration) {
	if d < 0 {
		panic(fmt.Errorf("pacer: negative timeout %v", d))
	}
	w.timeout.Store(int64(d))
}

// Stopping returns a channel that is closed when the worker has been
// asked to stop.
func (w *Worker) Stopping() <-chan struct{} { return w.stopping }

// Timeout returns the currently-configured pacing interval.
func (w *Worker) Timeout() time.Duration {
	return time.Duration(w.timeout.Load())
}

// Wait blocks the calling worker function until the configured pacing
// interval has elapsed or a stop has been requested. It returns true
// when the caller may proceed with its next unit of work and false when
// the caller's loop must exit.
//
// If a stop has already been requested, Wait returns false immediately.
// A wait that is woken early by [Worker.Stop] returns true; the
// following call observes the termination flag and returns false, so a
// worker performs at most one further unit of work after a stop
// request.
//
// The deadline is computed once per call, by adding the interval to the
// wall clock in whole seconds and microseconds and carrying a second
// when the microsecond component overflows.
func (w *Worker) Wait() bool {
	if w.terminated.Load() {
		return false
	}

	if l := w.limiter; l != nil {
		return w.waitLimiter(l)
	}
	if w.plainSleep {
		return w.sleep(w.Timeout())
	}

	now := usec.Now()
	deadline := now.Add(w.Timeout())
	t := time.NewTimer(deadline.Sub(now))
	defer t.Stop()

	select {
	case <-t.C:
		return true
	case <-w.stopping:
		// Signaled wake; the next call reports the stop.
		return true
	}
}

// waitLimiter paces through a token bucket instead of a fixed interval.
// A limiter wait that cannot complete reports as "stop waiting".
func (w *Worker) waitLimiter(l *rate.Limiter) bool {
	// Fast-path: a token is available.
	if l.Allow() {
		return true
	}
	return l.Wait(w.StoppingContext()) == nil
}

// sleep is the degraded wait for configurations where a deadline-based
// wait cannot be trusted. The sleep cannot be woken early to proceed;
// an interruption by a stop request reports false directly.
func (w *Worker) sleep(d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return true
	case <-w.stopping:
		return false
	}
}

// Stop requests termination, wakes any wait in flight, and then blocks
// until the worker function has returned, making it safe to discard the
// Worker afterward. A worker that has already exited on its own is
// tolerated, as is calling Stop more than once.
//
// Stop must not be called from the worker function itself; if it is,
// the call logs a warning and returns without synchronizing rather than
// deadlocking on its own exit.
func (w *Worker) Stop() {
	// The termination flag is set before the notification so that any
	// woken waiter observes it.
	w.terminated.Store(true)
	w.stopOnce.Do(func() { close(w.stopping) })

	if !w.attached.Load() {
		// Already reaped by a previous Stop.
		return
	}
	if gid.Current() == w.workerID.Load() {
		w.log.Warn("Stop called from the worker goroutine; skipping reap",
			"worker", w.name)
		return
	}
	<-w.done
	w.attached.Store(false)
}
