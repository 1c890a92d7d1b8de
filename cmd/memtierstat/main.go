// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Memtierstat summarizes repeated runs of a cache-server benchmark.
//
// Usage:
//
//	memtierstat [flags] [aggregator] dirs...
//
// Each dir is a benchmark root laid out as
//
//	<dir>/<version>/run-<n>/stdout.log
//
// where every stdout.log is the output of one benchmark run. For each
// run, memtierstat reads the last "Sets" and "Gets" throughput rows of
// the log. It then summarizes the runs of each version and prints two
// lines per version:
//
//	<version>	Sets	<ops/sec>
//	<version>	Gets	<hits/sec>	<misses/sec>	<total/sec>
//
// The total is the sum of the hit and miss rates of each run,
// summarized like the other columns. Runs whose log lacks a Sets or a
// Gets row are ignored, and versions without any usable run are left
// out of the report.
//
// Example
//
// Given the tree
//
//	results-2/
//	    build-12/run-1/stdout.log
//	    build-4/run-1/stdout.log
//	    build-4/run-2/stdout.log
//	    build-4/run-3/stdout.log
//
// running ``memtierstat results-2'' prints something like
//
//	results-build-4	Sets	15621.470000
//	results-build-4	Gets	140574.170000	15619.350000	156193.520000
//	results-build-12	Sets	16877.010000
//	results-build-12	Gets	149910.440000	16656.720000	166567.160000
//
// Because the root's name ends in "-2", its versions are reported
// under the prefix "results-". This way the trees of several numbered
// roots, such as results-1 and results-2, are merged into the same
// versions. Versions are ordered by the number after the last "-" in
// their key, so build-4 comes before build-12.
//
// Aggregators
//
// By default, each version is summarized by the median of its runs.
// A leading argument of median, mean, min, or max selects a different
// aggregator, as does the --aggregator flag.
//
// Output formats
//
// The --format flag selects the report format: text (the default,
// shown above), csv, table (aligned for terminals), json, or yaml.
// The gobench format instead lists every run, unsummarized, in the Go
// benchmark format, so that versions can be compared with benchstat:
//
//	memtierstat --format gobench results-2 > runs.txt
//	benchstat -col version runs.txt
//
// Configuration
//
// Every flag may also be set in a YAML file (--config, or
// .memtierstat.yaml in the working or home directory) or in the
// environment as MEMTIERSTAT_<FLAG>, with dashes replaced by
// underscores. Flags take precedence over the environment, which takes
// precedence over the file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cuckood/memtierstat/cmd/memtierstat/internal/runtab"
	"github.com/cuckood/memtierstat/runfmt"
	"github.com/cuckood/memtierstat/runmath"
	"github.com/cuckood/memtierstat/runproc"
)

// version is set at build time.
var version = "devel"

func main() {
	if err := memtierstat(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "memtierstat: %s\n", err)
		os.Exit(1)
	}
}

func memtierstat(w, wErr io.Writer, args []string) error {
	cmd := newCommand(w, wErr)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func newCommand(w, wErr io.Writer) *cobra.Command {
	var (
		configPath     string
		verbose, quiet bool
	)
	cmd := &cobra.Command{
		Use:   "memtierstat [flags] [aggregator] dirs...",
		Short: "Summarize repeated runs of a cache-server benchmark",
		Long: `memtierstat reads the stdout.log of every run under <dir>/<version>/run-*
and prints the Sets and Gets throughput of each version, summarized
over its runs. The optional leading aggregator is one of median (the
default), mean, min, or max.`,
		Version:       version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			if agg, ok := runmath.Lookup(args[0]); ok {
				cfg.Aggregator = agg.Name()
				args = args[1:]
			}
			if len(args) == 0 {
				return errors.New("no benchmark directories given")
			}
			log := newLogger(wErr, verbose, quiet)
			return run(w, log, cfg, args)
		},
	}
	cmd.SetOut(w)
	cmd.SetErr(wErr)

	fs := cmd.Flags()
	fs.StringVar(&configPath, "config", "", "read configuration from `file`")
	fs.BoolVarP(&verbose, "verbose", "v", false, "log skipped runs and versions")
	fs.BoolVarP(&quiet, "quiet", "q", false, "log errors only")
	addConfigFlags(fs)
	return cmd
}

// run summarizes the benchmark trees under roots and writes the report
// to w.
func run(w io.Writer, log *slog.Logger, cfg *config, roots []string) error {
	agg, err := runmath.Parse(cfg.Aggregator)
	if err != nil {
		return err
	}

	versions, err := runproc.Discover(roots, runproc.DiscoverOptions{Prefix: cfg.Prefix})
	if err != nil {
		return err
	}

	b := runtab.NewBuilder()
	for _, v := range versions {
		b.AddVersion(v.Key)
		for _, path := range v.Logs {
			res, err := runfmt.ParseFile(path)
			if err != nil {
				var serr *runfmt.SyntaxError
				if cfg.SkipMalformed && errors.As(err, &serr) {
					log.Warn("skipping malformed run", "error", err)
					continue
				}
				return err
			}
			if !b.Add(v.Key, res) {
				log.Debug("skipping incomplete run", "log", path, "sets", res.HasSets, "gets", res.HasGets)
			}
		}
	}

	if cfg.Format == "gobench" {
		return b.WriteRuns(w)
	}

	t, dropped := b.ToTable(runtab.TableOpts{
		Aggregator: agg,
		Total:      cfg.Total,
		KeepEmpty:  cfg.KeepEmpty,
	})
	for _, key := range dropped {
		log.Debug("dropping version without runs", "version", key)
	}

	switch cfg.Format {
	case "csv":
		return t.ToCSV(w)
	case "table":
		return t.ToPretty(w)
	case "json":
		return t.ToJSON(w)
	case "yaml":
		return t.ToYAML(w)
	}
	return t.ToText(w)
}

// newLogger returns a text logger on w without timestamps. It logs
// warnings by default, everything if verbose, and errors only if
// quiet.
func newLogger(w io.Writer, verbose, quiet bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}
