package querystring

import (
	"strconv"

	"github.com/indigo-web/querystring/pairs"
	"github.com/indigo-web/querystring/qerr"
	"github.com/indigo-web/utils/uf"
)

// Build joins the pairs into a single query string, escaping keys and values
// by the rules of the encoding mode. See Codec.Build
func Build(list *pairs.List, separator string, enc Encoding) ([]byte, error) {
	codec, err := NewCodec(separator, enc)
	if err != nil {
		return nil, err
	}

	return codec.Build(list)
}

// BuildEntries is Build over loosely typed entries. See Codec.BuildEntries
func BuildEntries(entries []any, separator string, enc Encoding) ([]byte, error) {
	codec, err := NewCodec(separator, enc)
	if err != nil {
		return nil, err
	}

	return codec.BuildEntries(entries)
}

// Build joins the pairs into a single query string in their original order,
// never merging duplicates. A pair with an absent (nil) value produces a
// bare key segment without the equality sign. Boolean values turn into "1"
// and "0", numeric ones into their decimal form. Any non-scalar value fails
// the whole call.
//
// A nil result means there was nothing to build, which is not the same as
// an empty query: zero pairs and a single empty pair are distinguishable
// the same way they are in Parse
func (c *Codec) Build(list *pairs.List) ([]byte, error) {
	if list == nil || list.Empty() {
		return nil, nil
	}

	var (
		buff []byte
		err  error
	)

	for i, pair := range list.Expose() {
		if i > 0 {
			buff = append(buff, c.separator...)
		}

		buff, err = c.appendPair(buff, pair)
		if err != nil {
			return nil, err
		}
	}

	if buff == nil {
		// pairs were present, they just produced no text. An empty query is
		// still a query, unlike the nil no-pairs case
		buff = []byte{}
	}

	return buff, nil
}

// BuildEntries accepts pair-like entries: pairs.Pair, []any, []string or
// [2]string. Only the first two positional elements of an entry are used.
// Empty entries are silently skipped. An entry of any other shape fails
// with a type mismatch, an absent or non-scalar key with an invalid pair
// error. The surviving entries are built exactly as in Build
func (c *Codec) BuildEntries(entries []any) ([]byte, error) {
	list := pairs.NewPreAlloc(len(entries))

	for _, entry := range entries {
		key, value, keep, err := splitEntry(entry)
		if err != nil {
			return nil, err
		}

		if keep {
			list.Add(key, value)
		}
	}

	return c.Build(list)
}

func (c *Codec) appendPair(buff []byte, pair pairs.Pair) ([]byte, error) {
	buff = c.encoder.Encode(uf.S2B(pair.Key), buff)

	switch value := pair.Value.(type) {
	case nil:
		return buff, nil
	case bool:
		// booleans are emitted literally, bypassing the encoder
		if value {
			return append(buff, '=', '1'), nil
		}

		return append(buff, '=', '0'), nil
	default:
		str, scalar := stringify(value)
		if !scalar {
			return nil, qerr.ErrInvalidPairValue
		}

		buff = append(buff, '=')

		return c.encoder.Encode(uf.S2B(str), buff), nil
	}
}

func splitEntry(entry any) (key string, value any, keep bool, err error) {
	var rawKey any

	switch e := entry.(type) {
	case pairs.Pair:
		return e.Key, e.Value, true, nil
	case []any:
		if len(e) == 0 {
			return "", nil, false, nil
		}

		rawKey = e[0]
		if len(e) > 1 {
			value = e[1]
		}
	case []string:
		if len(e) == 0 {
			return "", nil, false, nil
		}

		rawKey = e[0]
		if len(e) > 1 {
			value = e[1]
		}
	case [2]string:
		rawKey, value = e[0], e[1]
	default:
		return "", nil, false, qerr.ErrPairNotSliceable
	}

	if rawKey == nil {
		return "", nil, false, qerr.ErrInvalidPairKey
	}

	key, scalar := stringify(rawKey)
	if !scalar {
		return "", nil, false, qerr.ErrInvalidPairKey
	}

	return key, value, true, nil
}

// stringify renders a scalar in its canonical text form. The second return
// value reports whether the value was a scalar at all
func stringify(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		if v {
			return "1", true
		}

		return "0", true
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	default:
		return "", false
	}
}
