// Package iotest provides I/O helpers for tests.
package iotest

import (
	"bytes"
	"io"
	"testing"

	"go.abhg.dev/hlrange/internal/linebuf"
)

// Writer builds an io.Writer that writes to the given testing.TB.
// Each complete line is logged separately.
// A trailing partial line is logged when the test ends.
func Writer(t testing.TB) io.Writer {
	w, done := linebuf.Writer(func(line []byte) {
		t.Logf("%s", bytes.TrimSuffix(line, []byte("\n")))
	})
	t.Cleanup(done)
	return w
}
