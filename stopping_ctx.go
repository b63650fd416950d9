// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pacer

import (
	"context"
	"errors"
	"time"
)

var errCanceledStopped = errors.Join(context.Canceled, ErrStopped)

// StoppingContext adapts the worker's stop signal into a
// [context.Context]. This can be used whenever it is necessary to call
// other APIs that should be made aware of the stop condition.
//
// The returned context has the following behaviors:
//   - The [context.Context.Done] method returns [Worker.Stopping].
//   - The [context.Context.Err] method returns an error that is both
//     [context.Canceled] and [ErrStopped] once the worker has been
//     asked to stop.
//   - The context carries no deadline and no values.
func (w *Worker) StoppingContext() context.Context {
	return (*stoppingCtx)(w)
}

// stoppingCtx just swizzles the method set.
type stoppingCtx Worker

var _ context.Context = (*stoppingCtx)(nil)

func (c *stoppingCtx) Deadline() (deadline time.Time, ok bool) {
	return time.Time{}, false
}

func (c *stoppingCtx) Done() <-chan struct{} {
	return (*Worker)(c).Stopping()
}

func (c *stoppingCtx) Err() error {
	if (*Worker)(c).IsStopping() {
		return errCanceledStopped
	}
	return nil
}

func (c *stoppingCtx) Value(key any) any {
	return nil
}
