// Package querystring converts between raw URI query components and ordered
// key/value pair sequences, and reconstructs PHP-style nested structures
// from the flat sequence. Pair order, duplicate keys and the textual form of
// the data survive the conversion under any of the supported escaping
// conventions.
package querystring

import (
	"sync"

	"github.com/indigo-web/querystring/internal/percent"
	"github.com/indigo-web/querystring/qerr"
)

// Encoding selects the escaping convention used in both directions
type Encoding = percent.Mode

const (
	// RFC3986 is the generic URI component convention, the default
	RFC3986 = percent.RFC3986
	// RFC1738 is the form-encoding legacy convention
	RFC1738 = percent.RFC1738
	// RFC3987 is the internationalized display convention
	RFC3987 = percent.RFC3987
	// None disables the escaping machinery altogether
	None = percent.None
)

const DefaultSeparator = "&"

// Codec binds a pair separator and an encoding mode together. A constructed
// instance is immutable, holds no per-call state and is thereby safe to
// share across goroutines
type Codec struct {
	separator string
	encoder   percent.Encoder
}

// NewCodec returns a codec for the separator and the encoding mode. The
// mode is checked here, before any text is ever processed
func NewCodec(separator string, enc Encoding) (*Codec, error) {
	if !enc.Valid() {
		return nil, qerr.ErrUnsupportedEncoding
	}

	if len(separator) == 0 {
		return nil, qerr.ErrEmptySeparator
	}

	return &Codec{
		separator: separator,
		encoder:   percent.NewEncoder(enc, separator),
	}, nil
}

func (c *Codec) Separator() string {
	return c.separator
}

func (c *Codec) Encoding() Encoding {
	return c.encoder.Mode()
}

// Default returns the shared ampersand/RFC3986 codec. It is constructed
// lazily exactly once and never modified afterwards
var Default = sync.OnceValue(func() *Codec {
	codec, err := NewCodec(DefaultSeparator, RFC3986)
	if err != nil {
		panic(err)
	}

	return codec
})
