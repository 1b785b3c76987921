// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

// DefaultTimeout bounds tests that drive timers or UI loops.
const DefaultTimeout = 5 * time.Second

// Context returns a context cancelled at test cleanup or after timeout,
// whichever comes first. The timeout shrinks to fit the test deadline.
func Context(t *testing.T, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if deadline, ok := t.Deadline(); ok {
		if remaining := time.Until(deadline) - time.Second; remaining > 0 && remaining < timeout {
			timeout = remaining
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}

// Script returns a reader yielding each line followed by a newline, as a
// user typing at a prompt would.
func Script(lines ...string) io.Reader {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return strings.NewReader(b.String())
}
