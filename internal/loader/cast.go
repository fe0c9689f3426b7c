package loader

import "golang.org/x/text/encoding"

// castSeqKey is the distinguished key carrying the ordered cast sequence in
// a cast document.
const castSeqKey = "cast_seq"

// ParseCast reads a cast document, the mirror of the machine-environment
// shape one level up: "cast_seq" is the ordered cast sequence and every
// other key is a cast id mapped to the ordered charge ids it contains.
func ParseCast(path string, enc encoding.Encoding) ([]string, map[string][]string, error) {
	return parseGroupDocument(path, enc, castSeqKey, "cast sequence not defined")
}
