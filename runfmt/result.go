// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runfmt reads the result logs written by repeated runs of a
// cache-server benchmark tool.
//
// A benchmark tree has three levels: a root directory holds one
// directory per version (or configuration), and each version holds
// one "run-*" directory per benchmark run. Every run directory
// contains a stdout.log with the tool's summary table, in which the
// throughput rows look like:
//
//	Type         Ops/sec     Hits/sec   Misses/sec      Latency       KB/sec
//	------------------------------------------------------------------------
//	Sets        15621.47          ---          ---      0.78300      1203.29
//	Gets       156193.52    140574.17     15619.35      0.76700      6018.67
//	Totals     171814.99    140574.17     15619.35      0.76800      7221.96
//
// Reader and Parse extract a Result from each log; the runproc
// package finds the logs.
package runfmt

import (
	"fmt"
	"strconv"
)

// A Kind identifies the type of a throughput row.
type Kind int

const (
	// Sets is a row reporting write throughput.
	Sets Kind = iota
	// Gets is a row reporting read throughput split into hits
	// and misses.
	Gets
)

func (k Kind) String() string {
	switch k {
	case Sets:
		return "Sets"
	case Gets:
		return "Gets"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// A Field is a single whitespace-separated field of a throughput row.
// It is either a number or an uninterpreted token.
type Field struct {
	// IsNumber reports whether the field parsed as a number. If
	// so, Num holds its value. Otherwise, Token holds the raw
	// text.
	IsNumber bool
	Num      float64
	Token    string
}

// Number returns a numeric Field.
func Number(v float64) Field {
	return Field{IsNumber: true, Num: v}
}

// Token returns a non-numeric Field.
func Token(s string) Field {
	return Field{Token: s}
}

func (f Field) String() string {
	if f.IsNumber {
		return strconv.FormatFloat(f.Num, 'g', -1, 64)
	}
	return strconv.Quote(f.Token)
}

// A Line is a single throughput row of a run log.
type Line struct {
	Kind Kind
	// Num is the 1-based line number within the log.
	Num    int
	Fields []Field
}

// Float returns the numeric value of field i. It returns an error if
// the line has fewer than i+1 fields or if field i is not a number.
func (l *Line) Float(i int) (float64, error) {
	if i >= len(l.Fields) {
		return 0, fmt.Errorf("%s row has %d fields, want at least %d", l.Kind, len(l.Fields), i+1)
	}
	f := l.Fields[i]
	if !f.IsNumber {
		return 0, fmt.Errorf("%s row field %d is %s, want a number", l.Kind, i, f)
	}
	return f.Num, nil
}

// GetRates is the read throughput of a run.
type GetRates struct {
	Hit, Miss float64
}

// Total returns the combined hit and miss rate.
func (g GetRates) Total() float64 {
	return g.Hit + g.Miss
}

// A Result is the throughput extracted from one run log.
//
// When a log contains several rows of the same kind, the last one
// wins.
type Result struct {
	// Sets is the write rate in operations per second. It is only
	// meaningful if HasSets is set.
	Sets    float64
	HasSets bool

	// Gets is the read rate. It is only meaningful if HasGets is
	// set.
	Gets    GetRates
	HasGets bool
}

// Complete reports whether r has both a Sets and a Gets rate.
func (r *Result) Complete() bool {
	return r.HasSets && r.HasGets
}
