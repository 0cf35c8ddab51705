package hexconv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHalfbyte(t *testing.T) {
	for i, digit := range "0123456789abcdef" {
		require.Equal(t, byte(i), Halfbyte[digit])
		require.True(t, Is(byte(digit)))
	}

	for i, digit := range "0123456789ABCDEF" {
		require.Equal(t, byte(i), Halfbyte[digit])
	}

	for _, char := range []byte{'g', 'G', 'z', ' ', '%', 0x00, 0xff} {
		require.False(t, Is(char), string(char))
	}
}

func TestParse(t *testing.T) {
	require.Equal(t, byte(0x2b), Parse('2', 'b'))
	require.Equal(t, byte(0x2b), Parse('2', 'B'))
	require.Equal(t, byte(0xff), Parse('F', 'f'))
	require.Equal(t, byte(0x00), Parse('0', '0'))
}

func benchLocal(b *testing.B, str string) {
	b.SetBytes(int64(len(str)))
	b.ResetTimer()

	for range b.N {
		var result uint64

		for j := range str {
			result = (result << 4) | uint64(Halfbyte[str[j]])
		}
	}
}

func BenchmarkParse(b *testing.B) {
	b.Run("short", func(b *testing.B) {
		benchLocal(b, "123456789abcdef")
	})

	b.Run("long", func(b *testing.B) {
		benchLocal(b, strings.Repeat("123456789abcdef", 100))
	})
}
