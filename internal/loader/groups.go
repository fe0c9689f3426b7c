package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/text/encoding"
)

// parseGroupDocument reads the shared shape of the machine-environment and
// cast files: a JSON object in which one distinguished key (seqKey) carries
// an ordered identifier list and every other key maps a group identifier to
// its member list. emptyMsg is the schema violation reported when the
// distinguished sequence is absent or empty.
func parseGroupDocument(path string, enc encoding.Encoding, seqKey, emptyMsg string) ([]string, map[string][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	var doc map[string]json.RawMessage
	if err := json.NewDecoder(decode(f, enc)).Decode(&doc); err != nil {
		return nil, nil, &SchemaError{Path: path, Message: fmt.Sprintf("not a JSON object: %v", err)}
	}

	var seq []string
	groups := make(map[string][]string, len(doc))
	for key, raw := range doc {
		var ids []string
		if err := json.Unmarshal(raw, &ids); err != nil {
			return nil, nil, &SchemaError{
				Path:    path,
				Message: fmt.Sprintf("value of %q must be a list of identifiers: %v", key, err),
			}
		}
		if key == seqKey {
			seq = ids
			continue
		}
		groups[key] = ids
	}

	if len(seq) == 0 {
		return nil, nil, &SchemaError{Path: path, Message: emptyMsg}
	}
	return seq, groups, nil
}
