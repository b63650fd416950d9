// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pacer

// StopOnReceive will stop the Worker when a value is received from the
// channel or if the channel is closed. StopOnReceive can be used, for
// example, with [os/signal.Notify]. The monitor exits on its own once
// the worker has stopped or finished.
func StopOnReceive[T any](w *Worker, ch <-chan T) {
	go func() {
		select {
		case <-ch:
			w.Stop()
		case <-w.Stopping():
		case <-w.Done():
		}
	}()
}
