package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
)

// Process-time table column names. Columns are located by header name, so
// their order in the file is irrelevant.
const (
	colCharge  = "ch_id"
	colMachine = "mc_id"
	colTime    = "pt"
)

// ParseProcessTimes reads the tabular process-time file into a nested map:
// charge id -> machine id -> integer processing time. A machine absent from
// a charge's inner map cannot process that charge.
//
// Rows repeating a (charge, machine) pair overwrite earlier ones. The
// overwrite is reported at Debug level but is not an error; generators have
// been observed emitting such rows and the effective value is the last one.
func ParseProcessTimes(path string, enc encoding.Encoding) (map[string]map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(decode(f, enc))

	header, err := r.Read()
	if err != nil {
		return nil, &SchemaError{Path: path, Message: fmt.Sprintf("missing header row: %v", err)}
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{colCharge, colMachine, colTime} {
		if _, ok := cols[name]; !ok {
			return nil, &SchemaError{Path: path, Message: fmt.Sprintf("header lacks required column %q", name)}
		}
	}

	times := make(map[string]map[string]int)
	for row := 2; ; row++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &SchemaError{Path: path, Message: fmt.Sprintf("malformed row: %v", err)}
		}

		charge := record[cols[colCharge]]
		machine := record[cols[colMachine]]
		raw := record[cols[colTime]]
		pt, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, &SchemaError{
				Path:    path,
				Message: fmt.Sprintf("row %d: column %q must be an integer, got %q", row, colTime, raw),
			}
		}

		inner, ok := times[charge]
		if !ok {
			inner = make(map[string]int)
			times[charge] = inner
		}
		if prev, dup := inner[machine]; dup {
			slog.Debug("duplicate process-time row overwrites earlier value",
				"file", path,
				"row", row,
				"charge", charge,
				"machine", machine,
				"old_pt", prev,
				"new_pt", pt)
		}
		inner[machine] = pt
	}
	return times, nil
}
