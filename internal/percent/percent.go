package percent

import (
	"bytes"

	"github.com/indigo-web/querystring/internal/hexconv"
)

// Mode selects both the decode-normalization ruleset and the encode
// allowed-character policy
type Mode uint8

const (
	// RFC3986 is the default generic URI component convention
	RFC3986 Mode = iota
	// RFC1738 is the form-encoding legacy convention: plus stands for space
	// on input, and literal plus and tilde are escaped on output
	RFC1738
	// RFC3987 is the internationalized display form: everything except
	// control characters, the number sign and the separator stays literal
	RFC3987
	// None leaves the text as-is in both directions
	None
)

func (m Mode) Valid() bool {
	return m <= None
}

func (m Mode) String() string {
	switch m {
	case RFC3986:
		return "RFC3986"
	case RFC1738:
		return "RFC1738"
	case RFC3987:
		return "RFC3987"
	case None:
		return "none"
	default:
		return "unknown"
	}
}

// protected holds the bytes whose percent-triplets are canonicalized to
// uppercase hex instead of being decoded during normalization. Decoding them
// could turn an escaped structural character into a live one, so they stay
// escaped. The set is historical and irregular (note the absent lowercase z);
// it is preserved literally rather than derived from the unreserved set
var protected = func() (table [256]bool) {
	for _, c := range []byte("-.0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxy~") {
		table[c] = true
	}

	return table
}()

var unreserved = func() (table [256]bool) {
	for c := byte('a'); c <= 'z'; c++ {
		table[c] = true
		table[c-0x20] = true
	}
	for c := byte('0'); c <= '9'; c++ {
		table[c] = true
	}
	table['-'], table['_'], table['.'], table['~'] = true, true, true, true

	return table
}()

// subdelims are allowed to stay literal under RFC3986 unless one of them is
// the active separator
const subdelims = "!$'()*+,;=:@?/&%"

// Normalize decodes percent-triplets of src into buff, except triplets of
// protected bytes, which are re-emitted with uppercase hex digits. Anything
// that is not a valid triplet is passed through unchanged. If src contains
// no escapes at all, it is returned directly and buff stays untouched
func Normalize(src, buff []byte) []byte {
	if bytes.IndexByte(src, '%') == -1 {
		return src
	}

	for i := 0; i < len(src); {
		c := src[i]
		if c != '%' || i+2 >= len(src) || !hexconv.Is(src[i+1]) || !hexconv.Is(src[i+2]) {
			buff = append(buff, c)
			i++
			continue
		}

		if decoded := hexconv.Parse(src[i+1], src[i+2]); protected[decoded] {
			buff = append(buff, '%', upper(src[i+1]), upper(src[i+2]))
		} else {
			buff = append(buff, decoded)
		}

		i += 3
	}

	return buff
}

// DecodeAll decodes every valid percent-triplet of src into buff without
// exceptions, leaving malformed escapes literal. Same fast path rules as
// Normalize
func DecodeAll(src, buff []byte) []byte {
	if bytes.IndexByte(src, '%') == -1 {
		return src
	}

	for i := 0; i < len(src); {
		c := src[i]
		if c != '%' || i+2 >= len(src) || !hexconv.Is(src[i+1]) || !hexconv.Is(src[i+2]) {
			buff = append(buff, c)
			i++
			continue
		}

		buff = append(buff, hexconv.Parse(src[i+1], src[i+2]))
		i += 3
	}

	return buff
}

func upper(hexdigit byte) byte {
	if hexdigit >= 'a' && hexdigit <= 'f' {
		return hexdigit - 0x20
	}

	return hexdigit
}
