// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runproc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuffix(t *testing.T) {
	for key, want := range map[string]string{
		"svc-10":        "10",
		"svc-007":       "7",
		"bench-node-2":  "2",
		"v1.4-12rc":     "12",
		"vA":            "0",
		"10":            "10",
		"svc-":          "0",
		"svc-x1":        "0",
	} {
		assert.Equal(t, want, Suffix(key), key)
	}
	assert.Equal(t, "99999999999999999999999", Suffix("a-99999999999999999999999"))
}

func TestSortKeys(t *testing.T) {
	keys := []string{"svc-2", "svc-10", "svc-1"}
	SortKeys(keys)
	assert.Equal(t, []string{"svc-1", "svc-2", "svc-10"}, keys)

	want := []string{"a", "b-x", "z", "b-1", "a-2", "b-2", "c-9", "x-10", "y-99999999999999999999999"}
	rng := rand.New(rand.NewSource(1))
	for try := 0; try < 10; try++ {
		keys := append([]string(nil), want...)
		rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
		SortKeys(keys)
		assert.Equal(t, want, keys)
	}
}

func TestLess(t *testing.T) {
	assert.True(t, Less("svc-2", "svc-10"))
	assert.False(t, Less("svc-10", "svc-2"))
	assert.True(t, Less("a-1", "b-1"))
	assert.False(t, Less("a-1", "a-1"))
	assert.True(t, Less("x-9", "x-00010"))

	// Less agrees with SortKeys.
	keys := []string{"b-2", "a", "c-10", "a-2", "z-1"}
	SortKeys(keys)
	for i := 1; i < len(keys); i++ {
		assert.True(t, Less(keys[i-1], keys[i]), "%s before %s", keys[i-1], keys[i])
	}
}
