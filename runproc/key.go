// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runproc

import (
	"path/filepath"
	"regexp"
)

// keySep separates a root prefix from a version name, and the
// numeric suffix of a key from the rest of it.
const keySep = "-"

var rootRe = regexp.MustCompile(`^(.*)-(\d+)$`)

// RootPrefix returns the prefix contributed by a root directory to
// the keys of its versions. If the base name of root has the form
// "<name>-<digits>", the prefix is name. Otherwise it is "" and ok is
// false.
//
// This lets several numbered roots of the same benchmark, such as
// "bench-1" and "bench-2", report under common keys.
func RootPrefix(root string) (prefix string, ok bool) {
	m := rootRe.FindStringSubmatch(filepath.Base(root))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Key returns the version key for the version directory named name.
// If hasPrefix is set, the key is prefix and name joined by "-".
func Key(prefix string, hasPrefix bool, name string) string {
	if !hasPrefix {
		return name
	}
	return prefix + keySep + name
}
