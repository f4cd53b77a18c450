// Package ingest reads comma-separated records and forwards them into the
// route graph and the airport index.
//
// Edge records are "origin,destination,weight" with a base-10 integer
// weight. Airport records are "code,name"; the name runs to the end of the
// line and may contain commas. Fields are split literally on commas: quotes
// have no special meaning. Surrounding whitespace is trimmed and blank lines
// are skipped. A malformed record aborts the import with a *LineError;
// records applied before it stay applied.
package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/airlink/core"
)

// ErrMalformedRecord is wrapped by every LineError caused by record shape or
// content, as opposed to read failures.
var ErrMalformedRecord = errors.New("ingest: malformed record")

// LineError reports the input line that aborted an import.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Stats summarises an edge import.
type Stats struct {
	// Applied counts records that became edges.
	Applied int
	// Dropped counts well-formed records skipped because an endpoint is unknown.
	Dropped int
}

// Edges reads edge records from r and adds each one to g.
//
// Stats covers every record processed before a failure, so on error it tells
// how much of the input was applied.
func Edges(g *core.Graph, r io.Reader) (Stats, error) {
	var st Stats
	err := each(r, 3, splitAll, func(rec []string) error {
		w, err := strconv.ParseInt(rec[2], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: weight %q is not an integer", ErrMalformedRecord, rec[2])
		}
		if g.AddEdge(rec[0], rec[1], w) {
			st.Applied++
		} else {
			st.Dropped++
		}
		return nil
	})

	return st, err
}

// Airports reads "code,name" records from r and calls fn for each one. An
// error from fn aborts the import and is returned wrapped in a *LineError.
// It returns the number of records fn accepted.
func Airports(r io.Reader, fn func(code, name string) error) (int, error) {
	n := 0
	err := each(r, 2, splitName, func(rec []string) error {
		if rec[0] == "" {
			return fmt.Errorf("%w: empty airport code", ErrMalformedRecord)
		}
		if err := fn(rec[0], rec[1]); err != nil {
			return err
		}
		n++
		return nil
	})

	return n, err
}

// maxLine bounds a single input line.
const maxLine = 1 << 20

func splitAll(line string) []string { return strings.Split(line, ",") }

// splitName keeps everything after the first comma as one field.
func splitName(line string) []string { return strings.SplitN(line, ",", 2) }

// each feeds every non-blank line, split into exactly want trimmed fields,
// to fn.
func each(r io.Reader, want int, split func(string) []string, fn func(rec []string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)

	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		rec := split(text)
		if len(rec) != want {
			return &LineError{Line: line, Err: fmt.Errorf("%w: want %d fields, got %d", ErrMalformedRecord, want, len(rec))}
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		if err := fn(rec); err != nil {
			return &LineError{Line: line, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("ingest: read: %w", err)
	}

	return nil
}
