// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runtab

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// A Table summarizes the runs of each version, one Row per version
// in report order.
type Table struct {
	// Aggregator is the name of the aggregator that produced the
	// summaries.
	Aggregator string

	// Total indicates that the combined Gets rate is part of the
	// table.
	Total bool

	Rows []*Row
}

// A Row is the summary of one version. All rates are in operations
// per second.
type Row struct {
	Key string
	// Runs is the number of runs summarized.
	Runs int

	Set       float64
	Hit, Miss float64
	GetTotal  float64
}

// ToText renders t in the plain tab-separated report format: for each
// version, a Sets line with the set rate and a Gets line with the
// hit, miss and, if enabled, total rates.
func (t *Table) ToText(w io.Writer) error {
	for _, row := range t.Rows {
		if _, err := fmt.Fprintf(w, "%s\tSets\t%f\n", row.Key, row.Set); err != nil {
			return err
		}
		var err error
		if t.Total {
			_, err = fmt.Fprintf(w, "%s\tGets\t%f\t%f\t%f\n", row.Key, row.Hit, row.Miss, row.GetTotal)
		} else {
			_, err = fmt.Fprintf(w, "%s\tGets\t%f\t%f\n", row.Key, row.Hit, row.Miss)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// ToCSV renders t as CSV with a header row.
func (t *Table) ToCSV(w io.Writer) error {
	o := csv.NewWriter(w)
	hdr := []string{"version", "runs", "sets", "get_hit", "get_miss"}
	if t.Total {
		hdr = append(hdr, "get_total")
	}
	o.Write(hdr)
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	for _, row := range t.Rows {
		rec := []string{row.Key, strconv.Itoa(row.Runs), f(row.Set), f(row.Hit), f(row.Miss)}
		if t.Total {
			rec = append(rec, f(row.GetTotal))
		}
		o.Write(rec)
	}
	o.Flush()
	return o.Error()
}

// ToPretty renders t as a box-drawn table for terminals.
func (t *Table) ToPretty(w io.Writer) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.SetTitle(t.Aggregator + " ops/sec")

	hdr := table.Row{"version", "runs", "sets", "get hits", "get misses"}
	if t.Total {
		hdr = append(hdr, "gets")
	}
	tw.AppendHeader(hdr)

	// Right-align every column but the version.
	var cols []table.ColumnConfig
	for i := 2; i <= len(hdr); i++ {
		cols = append(cols, table.ColumnConfig{Number: i, Align: text.AlignRight})
	}
	tw.SetColumnConfigs(cols)

	rate := func(v float64) string { return humanize.CommafWithDigits(v, 2) }
	for _, row := range t.Rows {
		r := table.Row{row.Key, row.Runs, rate(row.Set), rate(row.Hit), rate(row.Miss)}
		if t.Total {
			r = append(r, rate(row.GetTotal))
		}
		tw.AppendRow(r)
	}

	_, err := io.WriteString(w, tw.Render()+"\n")
	return err
}

// record is the JSON and YAML form of a Row.
type record struct {
	Version string     `json:"version" yaml:"version"`
	Runs    int        `json:"runs" yaml:"runs"`
	Sets    float64    `json:"sets" yaml:"sets"`
	Gets    recordGets `json:"gets" yaml:"gets"`
}

type recordGets struct {
	Hit   float64  `json:"hit" yaml:"hit"`
	Miss  float64  `json:"miss" yaml:"miss"`
	Total *float64 `json:"total,omitempty" yaml:"total,omitempty"`
}

type document struct {
	Aggregator string   `json:"aggregator" yaml:"aggregator"`
	Versions   []record `json:"versions" yaml:"versions"`
}

func (t *Table) document() document {
	doc := document{Aggregator: t.Aggregator, Versions: []record{}}
	for _, row := range t.Rows {
		r := record{
			Version: row.Key,
			Runs:    row.Runs,
			Sets:    row.Set,
			Gets:    recordGets{Hit: row.Hit, Miss: row.Miss},
		}
		if t.Total {
			total := row.GetTotal
			r.Gets.Total = &total
		}
		doc.Versions = append(doc.Versions, r)
	}
	return doc
}

// ToJSON renders t as an indented JSON document.
func (t *Table) ToJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t.document())
}

// ToYAML renders t as a YAML document.
func (t *Table) ToYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t.document()); err != nil {
		return err
	}
	return enc.Close()
}
