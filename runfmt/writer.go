// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runfmt

import (
	"bytes"
	"fmt"
	"io"
)

// A Writer writes run results in the Go benchmark format
// (https://golang.org/design/14313-benchmark-format), so that they can
// be compared with tools such as benchstat.
//
// Each version becomes a block with a "version" configuration line,
// and each run a result line with one iteration:
//
//	version: bench-v1
//
//	BenchmarkMemtier/run=1 1 15621.47 sets/s 140574.17 hits/s 15619.35 misses/s 156193.52 gets/s
type Writer struct {
	w   io.Writer
	buf bytes.Buffer

	first   bool
	version string
}

// NewWriter returns a writer that writes run results to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, first: true}
}

// Write writes the n'th run of version. If version differs from the
// version of the previous call, it first emits a configuration block.
// Only the rates res has are written.
func (w *Writer) Write(version string, n int, res *Result) error {
	if w.first || version != w.version {
		if !w.first {
			// Configuration blocks after results get an extra blank.
			w.buf.WriteByte('\n')
		}
		fmt.Fprintf(&w.buf, "version: %s\n\n", version)
		w.version = version
		w.first = false
	}

	fmt.Fprintf(&w.buf, "BenchmarkMemtier/run=%d 1", n)
	if res.HasSets {
		fmt.Fprintf(&w.buf, " %v sets/s", res.Sets)
	}
	if res.HasGets {
		fmt.Fprintf(&w.buf, " %v hits/s %v misses/s %v gets/s", res.Gets.Hit, res.Gets.Miss, res.Gets.Total())
	}
	w.buf.WriteByte('\n')

	// Flush the buffer out to the io.Writer. Write to the buffer
	// can't fail, so we only have to check if this fails.
	_, err := w.w.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}
