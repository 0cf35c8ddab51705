package querystring

import (
	"strings"

	"github.com/indigo-web/querystring/internal/percent"
	"github.com/indigo-web/querystring/nested"
	"github.com/indigo-web/utils/uf"
)

// Extract parses the raw query and folds the pairs into a nested mapping
// via the bracket-key grammar. See Codec.Extract
func Extract(query []byte, separator string, enc Encoding) (*nested.Map, error) {
	codec, err := NewCodec(separator, enc)
	if err != nil {
		return nil, err
	}

	return codec.Extract(query)
}

// Extract parses the query and folds each pair into a nested mapping, the
// way legacy form-decoding does it: a key of the form name[a][b] descends
// into nested maps, empty brackets append under the next integer key, and
// malformed bracket syntax degrades to flat keys. Values are decoded
// unconditionally here, protected escapes included. Absent values become
// empty strings
func (c *Codec) Extract(query []byte) (*nested.Map, error) {
	list, err := c.Parse(query)
	if err != nil {
		return nil, err
	}

	result := nested.New()

	for _, pair := range list.Expose() {
		var value string
		if str, ok := pair.Value.(string); ok {
			value = uf.B2S(percent.DecodeAll(uf.S2B(str), nil))
		}

		fold(pair.Key, value, result)
	}

	return result, nil
}

// fold writes the value into the target under the bracket-grammar key.
// Pairs with empty names are discarded. A name without a complete [index]
// group is a flat key, dots and spaces included, with last-write-wins on
// repetition
func fold(name, value string, target *nested.Map) {
	if len(name) == 0 {
		return
	}

	lbracket := strings.IndexByte(name, '[')
	if lbracket == -1 {
		target.Set(name, value)
		return
	}

	rbracket := strings.IndexByte(name[lbracket:], ']')
	if rbracket == -1 {
		target.Set(name, value)
		return
	}
	rbracket += lbracket

	prefix := name[:lbracket]
	child := target.Sub(prefix)
	if child == nil {
		// either the slot is vacant, or it holds a scalar, which is
		// overwritten destructively
		child = nested.New()
		target.Set(prefix, child)
	}

	index := name[lbracket+1 : rbracket]
	if len(index) == 0 {
		child.Append(value)
		return
	}

	remainder := name[rbracket+1:]
	if strings.HasPrefix(remainder, "[") && strings.Contains(remainder, "]") {
		fold(index+remainder, value, child)
		return
	}

	// a trailing remainder without a complete bracket group is dropped
	child.Set(index, value)
}
