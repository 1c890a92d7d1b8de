// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runmath

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, Median.Apply(nil))
	assert.Equal(t, 7.5, Median.Apply([]float64{7.5}))
	assert.Equal(t, (1.25+8.5)/2.0, Median.Apply([]float64{8.5, 1.25}))
	assert.Equal(t, 3.0, Median.Apply([]float64{5, 1, 3}))
	assert.Equal(t, 2.5, Median.Apply([]float64{4, 1, 3, 2}))
}

func TestMedianPermutation(t *testing.T) {
	xs := []float64{9, 2, 7, 7, 1, 3.5, 10, 4}
	want := Median.Apply(xs)
	rng := rand.New(rand.NewSource(1))
	for try := 0; try < 20; try++ {
		rng.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
		assert.Equal(t, want, Median.Apply(xs), "%v", xs)
	}
}

func TestApplyKeepsInput(t *testing.T) {
	xs := []float64{3, 1, 2}
	for _, agg := range []Aggregator{Median, Mean, Min, Max} {
		agg.Apply(xs)
		assert.Equal(t, []float64{3, 1, 2}, xs, agg.Name())
	}
}

func TestOthers(t *testing.T) {
	xs := []float64{900, 950, 700}
	assert.Equal(t, 850.0, Mean.Apply(xs))
	assert.Equal(t, 700.0, Min.Apply(xs))
	assert.Equal(t, 950.0, Max.Apply(xs))

	for _, agg := range []Aggregator{Mean, Min, Max} {
		assert.Equal(t, 0.0, agg.Apply(nil), agg.Name())
		assert.Equal(t, 42.0, agg.Apply([]float64{42}), agg.Name())
	}
}

func TestLookup(t *testing.T) {
	assert.Equal(t, []string{"max", "mean", "median", "min"}, Names())
	for _, name := range Names() {
		agg, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, name, agg.Name())
		assert.Equal(t, name, agg.String())
	}

	_, ok := Lookup("mode")
	assert.False(t, ok)
	_, err := Parse("mode")
	assert.EqualError(t, err, `unknown aggregator "mode" (want one of max, mean, median, min)`)

	agg, err := Parse("mean")
	require.NoError(t, err)
	assert.Equal(t, 2.0, agg.Apply([]float64{1, 3}))
	assert.Equal(t, "median", Default.Name())
}
