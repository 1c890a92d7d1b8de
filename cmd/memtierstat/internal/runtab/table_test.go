// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runtab

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testTable(total bool) *Table {
	return &Table{
		Aggregator: "median",
		Total:      total,
		Rows: []*Row{
			{Key: "vA", Runs: 1, Set: 1500.2, Hit: 900, Miss: 50, GetTotal: 950},
			{Key: "bench-v-2", Runs: 3, Set: 1234567.125, Hit: 0.5, Miss: 0, GetTotal: 0.5},
		},
	}
}

func TestToText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testTable(true).ToText(&buf))
	assert.Equal(t, "vA\tSets\t1500.200000\n"+
		"vA\tGets\t900.000000\t50.000000\t950.000000\n"+
		"bench-v-2\tSets\t1234567.125000\n"+
		"bench-v-2\tGets\t0.500000\t0.000000\t0.500000\n", buf.String())

	buf.Reset()
	require.NoError(t, testTable(false).ToText(&buf))
	assert.Equal(t, "vA\tSets\t1500.200000\n"+
		"vA\tGets\t900.000000\t50.000000\n"+
		"bench-v-2\tSets\t1234567.125000\n"+
		"bench-v-2\tGets\t0.500000\t0.000000\n", buf.String())
}

func TestToCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testTable(false).ToCSV(&buf))
	assert.Equal(t, "version,runs,sets,get_hit,get_miss\n"+
		"vA,1,1500.2,900,50\n"+
		"bench-v-2,3,1234567.125,0.5,0\n", buf.String())
}

func TestToPretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testTable(true).ToPretty(&buf))
	// Headers may be case-transformed by the table style.
	out := strings.ToLower(buf.String())
	assert.Contains(t, out, "median ops/sec")
	assert.Contains(t, out, "1,234,567")
	assert.Contains(t, out, " gets ")
	assert.True(t, strings.HasSuffix(out, "\n"))

	buf.Reset()
	require.NoError(t, testTable(false).ToPretty(&buf))
	out = strings.ToLower(buf.String())
	assert.Contains(t, out, " get misses ")
	assert.NotContains(t, out, " gets ")
}

func TestToYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testTable(false).ToYAML(&buf))

	var doc document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "median", doc.Aggregator)
	require.Len(t, doc.Versions, 2)
	assert.Equal(t, "bench-v-2", doc.Versions[1].Version)
	assert.Equal(t, 3, doc.Versions[1].Runs)
	assert.Nil(t, doc.Versions[0].Gets.Total)
	assert.NotContains(t, buf.String(), "total")
}

func TestToJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&Table{Aggregator: "min"}).ToJSON(&buf))
	assert.JSONEq(t, `{"aggregator": "min", "versions": []}`, buf.String())
}
