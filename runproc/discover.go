// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runproc locates benchmark runs on disk and orders the
// version keys they are grouped under.
//
// A benchmark tree looks like
//
//	<root>/<version>/run-<n>/stdout.log
//
// Each <version> directory becomes a version key. If the base name of
// <root> has the form "<name>-<digits>", the key is prefixed with
// "<name>-", so "bench-3/v1" is reported as "bench-v1". Keys are
// ordered by the number after their last "-".
package runproc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LogName is the name of the result log in each run directory.
const LogName = "stdout.log"

// runPrefix is the name prefix of run directories.
const runPrefix = "run-"

// A Version is a version directory and the runs found in it.
type Version struct {
	// Key is the version key this directory reports under.
	Key string
	// Dir is the path of the version directory.
	Dir string
	// Logs is the path of the result log of each run, in name
	// order. The logs have not been opened and may not exist.
	Logs []string
}

// DiscoverOptions controls Discover.
type DiscoverOptions struct {
	// Prefix enables root prefixes in version keys. See
	// RootPrefix.
	Prefix bool
}

// Discover walks each root and returns its version directories in
// root order and, within a root, in name order. Entries that are not
// directories are skipped, as are hidden entries. Several roots may
// yield the same key; the caller is expected to merge them.
//
// An unreadable root or version directory is an error.
func Discover(roots []string, opts DiscoverOptions) ([]Version, error) {
	var out []Version
	for _, root := range roots {
		prefix, hasPrefix := "", false
		if opts.Prefix {
			prefix, hasPrefix = RootPrefix(root)
		}
		dirs, err := subdirs(root, "")
		if err != nil {
			return nil, err
		}
		for _, name := range dirs {
			dir := filepath.Join(root, name)
			runs, err := subdirs(dir, runPrefix)
			if err != nil {
				return nil, err
			}
			v := Version{Key: Key(prefix, hasPrefix, name), Dir: dir}
			for _, run := range runs {
				v.Logs = append(v.Logs, filepath.Join(dir, run, LogName))
			}
			out = append(out, v)
		}
	}
	return out, nil
}

// subdirs returns the names of the non-hidden directories in dir
// whose names begin with prefix, sorted by name. Symbolic links to
// directories are included.
func subdirs(dir, prefix string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading benchmark directory: %w", err)
	}
	var names []string
	for _, ent := range ents {
		name := ent.Name()
		if strings.HasPrefix(name, ".") || !strings.HasPrefix(name, prefix) {
			continue
		}
		isDir := ent.IsDir()
		if ent.Type()&os.ModeSymlink != 0 {
			fi, err := os.Stat(filepath.Join(dir, name))
			isDir = err == nil && fi.IsDir()
		}
		if isDir {
			names = append(names, name)
		}
	}
	return names, nil
}
