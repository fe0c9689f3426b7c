package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/text/encoding"
)

// ParseDueDates reads a due-date document: a JSON object mapping charge ids
// to integer due dates. The time unit is the consuming algorithm's concern;
// the loader carries the values opaquely.
func ParseDueDates(path string, enc encoding.Encoding) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	var due map[string]int
	if err := json.NewDecoder(decode(f, enc)).Decode(&due); err != nil {
		return nil, &SchemaError{
			Path:    path,
			Message: fmt.Sprintf("due dates must map charge ids to integers: %v", err),
		}
	}
	if due == nil {
		return nil, &SchemaError{Path: path, Message: "not a JSON object"}
	}
	return due, nil
}
