package hexconv

const Uppercase = "0123456789ABCDEF"

// Halfbyte maps a hex digit to its value. Entries of invalid digits are 0xff,
// so a pair of parsed halves can be validated at once via a|b > 0x0f
var Halfbyte = func() (table [256]byte) {
	for i := range table {
		table[i] = 0xff
	}

	for i, digit := range "0123456789abcdef" {
		table[digit] = byte(i)
		table[Uppercase[i]] = byte(i)
	}

	return table
}()

// Is tells whether the char is a valid hexadecimal digit
func Is(char byte) bool {
	return Halfbyte[char] != 0xff
}

// Parse combines two hex digits into a single byte. Both must be validated
// in advance
func Parse(hi, lo byte) byte {
	return Halfbyte[hi]<<4 | Halfbyte[lo]
}
