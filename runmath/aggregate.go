// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runmath reduces the samples of repeated benchmark runs to a
// single representative value.
package runmath

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aclements/go-moremath/stats"
)

// An Aggregator reduces a sample to one value. Aggregators do not
// modify their input, and all of them return 0 for an empty sample.
type Aggregator struct {
	name string
	fn   func(s *stats.Sample) float64
}

// Name returns the name the aggregator is looked up by.
func (a Aggregator) Name() string {
	return a.name
}

func (a Aggregator) String() string {
	return a.name
}

// Apply reduces xs.
func (a Aggregator) Apply(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	s := stats.Sample{Xs: append([]float64(nil), xs...)}
	return a.fn(&s)
}

var (
	// Median is the middle value of the sorted sample, or the mean
	// of the two middle values if the sample has even length.
	Median = Aggregator{"median", median}
	// Mean is the sum of the sample divided by its length.
	Mean = Aggregator{"mean", mean}
	// Min is the smallest value of the sample.
	Min = Aggregator{"min", func(s *stats.Sample) float64 {
		lo, _ := s.Bounds()
		return lo
	}}
	// Max is the largest value of the sample.
	Max = Aggregator{"max", func(s *stats.Sample) float64 {
		_, hi := s.Bounds()
		return hi
	}}
)

// Default is the aggregator used when none is selected.
var Default = Median

var aggregators = map[string]Aggregator{
	Median.name: Median,
	Mean.name:   Mean,
	Min.name:    Min,
	Max.name:    Max,
}

func median(s *stats.Sample) float64 {
	xs := s.Sort().Xs
	n := len(xs)
	return (xs[(n-1)/2] + xs[n/2]) / 2
}

func mean(s *stats.Sample) float64 {
	return s.Sum() / float64(len(s.Xs))
}

// Lookup returns the aggregator called name.
func Lookup(name string) (Aggregator, bool) {
	a, ok := aggregators[name]
	return a, ok
}

// Parse is like Lookup, but returns an error naming the valid
// aggregators if name is not one of them.
func Parse(name string) (Aggregator, error) {
	a, ok := Lookup(name)
	if !ok {
		return Aggregator{}, fmt.Errorf("unknown aggregator %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
	return a, nil
}

// Names returns the names of all aggregators in sorted order.
func Names() []string {
	names := make([]string, 0, len(aggregators))
	for name := range aggregators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
