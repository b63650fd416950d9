// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package pacer

import (
	"testing"

	"go.uber.org/goleak"
)

// Every worker and monitor goroutine must be gone once its Worker has
// been stopped.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
