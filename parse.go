package querystring

import (
	"bytes"

	"github.com/indigo-web/querystring/internal/percent"
	"github.com/indigo-web/querystring/pairs"
	"github.com/indigo-web/querystring/qerr"
	"github.com/indigo-web/utils/uf"
)

// Parse splits the raw query into an ordered sequence of pairs, decoding
// percent-escapes by the rules of the encoding mode. See Codec.Parse
func Parse(query []byte, separator string, enc Encoding) (*pairs.List, error) {
	codec, err := NewCodec(separator, enc)
	if err != nil {
		return nil, err
	}

	return codec.Parse(query)
}

// Parse splits the raw query on the codec's separator into an ordered,
// duplicate-preserving sequence of pairs. A nil query yields an empty
// sequence; an empty non-nil one yields a single pair of an empty key and
// an absent value, so the two cases stay distinguishable. A segment without
// an equality sign becomes a pair with an absent (nil) value
func (c *Codec) Parse(query []byte) (*pairs.List, error) {
	if query == nil {
		return pairs.New(), nil
	}

	if containsControls(query) {
		return nil, qerr.ErrMalformedQuery
	}

	list := pairs.New()
	if len(query) == 0 {
		return list.Add("", nil), nil
	}

	separator := uf.S2B(c.separator)

	for {
		next := bytes.Index(query, separator)
		if next == -1 {
			c.parsePair(query, list)
			return list, nil
		}

		c.parsePair(query[:next], list)
		query = query[next+len(separator):]
	}
}

func (c *Codec) parsePair(segment []byte, list *pairs.List) {
	key, value, hasValue := bytes.Cut(segment, []byte{'='})

	// under form-encoding a literal plus means space. The substitution must
	// happen before decoding, otherwise an escaped %2B would be eaten too
	form := c.Encoding() == RFC1738
	if form {
		key = plusToSpace(key)
	}

	if !hasValue {
		list.Add(string(percent.Normalize(key, nil)), nil)
		return
	}

	if form {
		value = plusToSpace(value)
	}

	list.Add(
		string(percent.Normalize(key, nil)),
		string(percent.Normalize(value, nil)),
	)
}

// plusToSpace replaces pluses with spaces, copying the data only if there
// is anything to replace
func plusToSpace(data []byte) []byte {
	plus := bytes.IndexByte(data, '+')
	if plus == -1 {
		return data
	}

	replaced := append(make([]byte, 0, len(data)), data...)
	for i := plus; i < len(replaced); i++ {
		if replaced[i] == '+' {
			replaced[i] = ' '
		}
	}

	return replaced
}

func containsControls(data []byte) bool {
	for _, c := range data {
		if c < 0x20 || c == 0x7f {
			return true
		}
	}

	return false
}
