// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runproc

import (
	"sort"
	"strings"
)

// Suffix returns the numeric suffix of key: the run of decimal digits
// that begins right after the last "-" in key (or at the start of key
// if it has no "-"), without leading zeros. A key without such digits
// has suffix "0".
//
// The suffix is returned as a string so that arbitrarily long digit
// runs still order correctly.
func Suffix(key string) string {
	if i := strings.LastIndex(key, keySep); i >= 0 {
		key = key[i+len(keySep):]
	}
	n := 0
	for n < len(key) && '0' <= key[n] && key[n] <= '9' {
		n++
	}
	digits := strings.TrimLeft(key[:n], "0")
	if digits == "" {
		return "0"
	}
	return digits
}

// compareNum compares two digit strings without leading zeros.
func compareNum(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// compareKeys orders keys a and b, whose suffixes are sa and sb.
func compareKeys(a, sa, b, sb string) int {
	if cmp := compareNum(sa, sb); cmp != 0 {
		return cmp
	}
	return strings.Compare(a, b)
}

// Less reports whether key a comes before key b in report order:
// ascending by numeric suffix, then by the keys themselves.
func Less(a, b string) bool {
	return compareKeys(a, Suffix(a), b, Suffix(b)) < 0
}

// SortKeys sorts keys into report order, as defined by Less.
func SortKeys(keys []string) {
	suffixes := make(map[string]string, len(keys))
	for _, k := range keys {
		suffixes[k] = Suffix(k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		return compareKeys(a, suffixes[a], b, suffixes[b]) < 0
	})
}
