package loader

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/castsched/castsched/internal/config"
)

// ResolveEncoding maps a configured charset label ("utf-8", "latin1",
// "euc-kr", ...) to its decoder. Labels are looked up in the WHATWG
// encoding index, which covers the alias spellings instance generators are
// known to emit.
func ResolveEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, config.NewMissingFieldError("i_encoding")
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, &config.ConfigError{
			Message: fmt.Sprintf("unknown input encoding %q", name),
			Err:     err,
		}
	}
	return enc, nil
}

// decode wraps r so reads yield UTF-8 regardless of the file's charset.
// A nil encoding passes the reader through untouched.
func decode(r io.Reader, enc encoding.Encoding) io.Reader {
	if enc == nil {
		return r
	}
	return transform.NewReader(r, enc.NewDecoder())
}
