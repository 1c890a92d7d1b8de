// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runfmt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// A Reader reads the throughput rows of a run log.
//
// Its API is modeled on bufio.Scanner. Lines that are not throughput
// rows are skipped. A Reader retains ownership of the Line it returns;
// a caller should copy anything it needs to retain.
//
// Lines may be of any length.
type Reader struct {
	r        *bufio.Reader
	buf      []byte
	fileName string
	lineNum  int
	err      error // current I/O error

	line Line
}

// A SyntaxError reports a throughput row that lacks a value the
// report needs.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", s.FileName, s.Line, s.Msg)
}

// NewReader constructs a reader for the run log in r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	if r.r == nil {
		r.r = bufio.NewReader(ior)
	} else {
		r.r.Reset(ior)
	}
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.lineNum = 0
	r.err = nil
	r.line = Line{Fields: r.line.Fields[:0]}
}

var (
	kindRe = regexp.MustCompile(`Sets|Gets`)
	// numRe matches the fields that are read as numbers. "---"
	// marks a column that does not apply to the row and reads
	// as 0.
	numRe = regexp.MustCompile(`^(?:---|\d+(?:\.\d+)?)$`)
)

// Scan advances the reader to the next throughput row and reports
// whether one was read. A line is a throughput row if it contains
// "Sets" or "Gets" anywhere; the first of the two words on the line
// decides its Kind.
// If Scan reaches EOF or an I/O error occurs, it returns false,
// in which case the caller should use the Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}

	for {
		b, err := r.readLine()
		if err != nil {
			if err != io.EOF {
				r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.lineNum+1, err)
			}
			return false
		}
		r.lineNum++
		kind := kindRe.Find(b)
		if kind == nil {
			// Ignore the line.
			continue
		}
		r.line.Num = r.lineNum
		if string(kind) == "Sets" {
			r.line.Kind = Sets
		} else {
			r.line.Kind = Gets
		}
		r.line.Fields = splitFields(r.line.Fields[:0], string(b))
		return true
	}
}

// readLine returns the next line without its line ending. The
// returned slice is only valid until the next call.
func (r *Reader) readLine() ([]byte, error) {
	r.buf = r.buf[:0]
	for {
		chunk, isPrefix, err := r.r.ReadLine()
		if err != nil {
			return nil, err
		}
		r.buf = append(r.buf, chunk...)
		if !isPrefix {
			return r.buf, nil
		}
	}
}

// splitFields appends the whitespace-separated fields of text to
// fields.
func splitFields(fields []Field, text string) []Field {
	for _, f := range strings.Fields(text) {
		fields = append(fields, parseField(f))
	}
	return fields
}

func parseField(f string) Field {
	if !numRe.MatchString(f) {
		return Token(f)
	}
	if f == "---" {
		return Number(0)
	}
	v, err := strconv.ParseFloat(f, 64)
	if err != nil {
		// Only possible on overflow.
		return Token(f)
	}
	return Number(v)
}

// Line returns the last throughput row read. The caller should not
// retain it, as it will be overwritten by the next call to Scan.
func (r *Reader) Line() *Line {
	return &r.line
}

// Err returns the first non-EOF I/O error that was encountered by the
// Reader.
func (r *Reader) Err() error {
	return r.err
}

// Columns of the throughput rows.
const (
	setsRateCol = 1
	getsHitCol  = 2
	getsMissCol = 3
)

// Parse reads a whole run log and returns its Result.
//
// Only the last row of each Kind counts; earlier rows are replaced
// without being interpreted. The rows that count must carry numbers in
// the columns the Result is built from. If one does not, Parse returns
// a *SyntaxError for it.
func Parse(r io.Reader, fileName string) (*Result, error) {
	rd := NewReader(r, fileName)
	// last is indexed by Kind. A zero Num means no row was seen.
	var last [Gets + 1]Line
	for rd.Scan() {
		l := rd.Line()
		row := &last[l.Kind]
		row.Kind, row.Num = l.Kind, l.Num
		row.Fields = append(row.Fields[:0], l.Fields...)
	}
	if err := rd.Err(); err != nil {
		return nil, err
	}

	// Report the first bad row in file order.
	rows := []*Line{&last[Sets], &last[Gets]}
	if rows[1].Num < rows[0].Num {
		rows[0], rows[1] = rows[1], rows[0]
	}
	res := new(Result)
	for _, row := range rows {
		if row.Num == 0 {
			continue
		}
		if err := res.add(row); err != nil {
			return nil, &SyntaxError{rd.fileName, row.Num, err.Error()}
		}
	}
	return res, nil
}

// ParseFile opens and parses the run log at path.
func ParseFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, path)
}

// add records l in r, replacing any earlier value of the same kind.
func (r *Result) add(l *Line) error {
	switch l.Kind {
	case Sets:
		v, err := l.Float(setsRateCol)
		if err != nil {
			return err
		}
		r.Sets, r.HasSets = v, true
	case Gets:
		hit, err := l.Float(getsHitCol)
		if err != nil {
			return err
		}
		miss, err := l.Float(getsMissCol)
		if err != nil {
			return err
		}
		r.Gets, r.HasGets = GetRates{hit, miss}, true
	}
	return nil
}
