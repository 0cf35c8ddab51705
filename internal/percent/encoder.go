package percent

import "github.com/indigo-web/querystring/internal/hexconv"

// Encoder escapes raw text according to a single mode and separator. The
// allowed-character table is computed once at construction, so a constructed
// Encoder is immutable and safe to share between goroutines
type Encoder struct {
	mode    Mode
	allowed [256]bool
}

// NewEncoder precomputes the escaping policy for the mode. The separator
// bytes are always excluded from the allowed set, so a separator can never
// appear unescaped inside a produced segment
func NewEncoder(mode Mode, separator string) Encoder {
	enc := Encoder{mode: mode}

	switch mode {
	case RFC3986, RFC1738:
		enc.allowed = unreserved
		for i := 0; i < len(subdelims); i++ {
			enc.allowed[subdelims[i]] = true
		}
	case RFC3987:
		for c := 0x20; c < 0x7f; c++ {
			enc.allowed[c] = true
		}
		for c := 0x80; c <= 0xff; c++ {
			enc.allowed[c] = true
		}
		enc.allowed['#'] = false
	case None:
		for c := 0; c <= 0xff; c++ {
			enc.allowed[c] = true
		}
		return enc
	}

	for i := 0; i < len(separator); i++ {
		enc.allowed[separator[i]] = false
	}

	return enc
}

func (e *Encoder) Mode() Mode {
	return e.mode
}

// Encode appends the escaped form of src to buff. Existing valid triplets
// are kept as-is, unless they stand for a plain unreserved byte, in which
// case the byte is emitted literally instead
func (e *Encoder) Encode(src, buff []byte) []byte {
	if e.mode == None {
		return append(buff, src...)
	}

	if e.mode == RFC3987 {
		for _, c := range src {
			buff = e.literal(buff, c)
		}

		return buff
	}

	for i := 0; i < len(src); {
		c := src[i]
		if c == '%' {
			if i+2 < len(src) && hexconv.Is(src[i+1]) && hexconv.Is(src[i+2]) {
				if decoded := hexconv.Parse(src[i+1], src[i+2]); unreserved[decoded] {
					buff = e.literal(buff, decoded)
				} else {
					buff = append(buff, src[i:i+3]...)
				}

				i += 3
				continue
			}

			// a stray percent not opening a triplet cannot be left literal
			buff = escape(buff, '%')
			i++
			continue
		}

		buff = e.literal(buff, c)
		i++
	}

	return buff
}

func (e *Encoder) literal(buff []byte, c byte) []byte {
	if !e.allowed[c] {
		return escape(buff, c)
	}

	if e.mode == RFC1738 {
		// plus is reserved for space under form-encoding, and tilde used to
		// be mangled by ancient gateways, so both get escaped nevertheless
		switch c {
		case '+', '~':
			return escape(buff, c)
		}
	}

	return append(buff, c)
}

func escape(buff []byte, c byte) []byte {
	return append(buff, '%', hexconv.Uppercase[c>>4], hexconv.Uppercase[c&0xf])
}
