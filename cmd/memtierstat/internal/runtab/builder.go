// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runtab groups benchmark run results by version and presents
// their summaries as a table.
package runtab

import (
	"io"

	"github.com/cuckood/memtierstat/runfmt"
	"github.com/cuckood/memtierstat/runmath"
	"github.com/cuckood/memtierstat/runproc"
)

// A Builder collects run results into per-version samples.
type Builder struct {
	// versions maps from version key to its samples.
	versions map[string]*samples
	// order is the keys of versions in observation order.
	order []string
}

// samples holds one value per accumulated run in each slice.
type samples struct {
	set, hit, miss, total []float64
}

// NewBuilder creates a new, empty Builder.
func NewBuilder() *Builder {
	return &Builder{versions: make(map[string]*samples)}
}

// AddVersion registers version key, which may end up with no runs.
func (b *Builder) AddVersion(key string) {
	b.version(key)
}

func (b *Builder) version(key string) *samples {
	s := b.versions[key]
	if s == nil {
		s = new(samples)
		b.versions[key] = s
		b.order = append(b.order, key)
	}
	return s
}

// Add adds the rates of one run to version key and reports whether
// the run was used. Runs that lack either a Sets or a Gets rate are
// not used, but still register key.
func (b *Builder) Add(key string, res *runfmt.Result) bool {
	s := b.version(key)
	if !res.Complete() {
		return false
	}
	s.set = append(s.set, res.Sets)
	s.hit = append(s.hit, res.Gets.Hit)
	s.miss = append(s.miss, res.Gets.Miss)
	s.total = append(s.total, res.Gets.Total())
	return true
}

// TableOpts provides options for constructing the summary table from
// a Builder.
type TableOpts struct {
	// Aggregator reduces the samples of each version. The zero
	// value selects runmath.Default.
	Aggregator runmath.Aggregator

	// Total adds the combined Gets rate to the table.
	Total bool

	// KeepEmpty keeps versions with no usable runs. Their
	// summaries are all zero.
	KeepEmpty bool
}

// ToTable finalizes a Builder into a summary table. Dropped holds the
// keys of versions that were left out for lack of runs.
func (b *Builder) ToTable(opts TableOpts) (t *Table, dropped []string) {
	agg := opts.Aggregator
	if agg.Name() == "" {
		agg = runmath.Default
	}
	t = &Table{Aggregator: agg.Name(), Total: opts.Total}

	keys := append([]string(nil), b.order...)
	runproc.SortKeys(keys)
	for _, key := range keys {
		s := b.versions[key]
		if len(s.set) == 0 && !opts.KeepEmpty {
			dropped = append(dropped, key)
			continue
		}
		t.Rows = append(t.Rows, &Row{
			Key:  key,
			Runs: len(s.set),
			Set:  agg.Apply(s.set),
			Hit:  agg.Apply(s.hit),
			Miss: agg.Apply(s.miss),
			// The total is aggregated from per-run totals,
			// not summed from the aggregated hit and miss.
			GetTotal: agg.Apply(s.total),
		})
	}
	return t, dropped
}

// WriteRuns writes every accumulated run to w in the Go benchmark
// format, versions in report order and runs in the order they were
// added.
func (b *Builder) WriteRuns(w io.Writer) error {
	keys := append([]string(nil), b.order...)
	runproc.SortKeys(keys)
	bw := runfmt.NewWriter(w)
	for _, key := range keys {
		s := b.versions[key]
		for i := range s.set {
			res := &runfmt.Result{
				Sets: s.set[i], HasSets: true,
				Gets: runfmt.GetRates{Hit: s.hit[i], Miss: s.miss[i]}, HasGets: true,
			}
			if err := bw.Write(key, i+1, res); err != nil {
				return err
			}
		}
	}
	return nil
}
