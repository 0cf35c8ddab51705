package querystring

import (
	"sync"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/querystring/pairs"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Run("configuration", func(t *testing.T) {
		require.Equal(t, DefaultSeparator, Default().Separator())
		require.Equal(t, RFC3986, Default().Encoding())
	})

	t.Run("memoized", func(t *testing.T) {
		require.Same(t, Default(), Default())
	})

	t.Run("concurrent use", func(t *testing.T) {
		var wg sync.WaitGroup

		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				for j := 0; j < 100; j++ {
					list, err := Default().Parse([]byte("a=1&b=2"))
					require.NoError(t, err)
					require.Equal(t, 2, list.Len())

					built, err := Default().Build(list)
					require.NoError(t, err)
					require.Equal(t, "a=1&b=2", string(built))
				}
			}()
		}

		wg.Wait()
	})
}

func TestNewCodec(t *testing.T) {
	t.Run("rejects unknown encodings", func(t *testing.T) {
		_, err := NewCodec(DefaultSeparator, Encoding(200))
		require.Error(t, err)
	})

	t.Run("rejects empty separators", func(t *testing.T) {
		_, err := NewCodec("", RFC3986)
		require.Error(t, err)
	})
}

// a build-parse round trip recovers the decoded pair sequence, although not
// necessarily the original raw bytes: encoding is one-way-canonicalizing
func TestRoundTrip(t *testing.T) {
	t.Run("random pairs", func(t *testing.T) {
		for _, enc := range []Encoding{RFC3986, RFC1738, RFC3987} {
			list := pairs.New()
			for i := 0; i < 16; i++ {
				list.Add(uniuri.New(), uniuri.NewLen(24))
			}
			list.Add(uniuri.New(), nil)

			built, err := Build(list, DefaultSeparator, enc)
			require.NoError(t, err)

			reparsed, err := Parse(built, DefaultSeparator, enc)
			require.NoError(t, err)
			require.Equal(t, list.Expose(), reparsed.Expose(), enc.String())
		}
	})

	t.Run("reserved characters", func(t *testing.T) {
		list := pairs.New().
			Add("to to", "foo+bar").
			Add("key", "a&b=c").
			Add("uni", "héllo")

		for _, enc := range []Encoding{RFC3986, RFC1738, RFC3987} {
			built, err := Build(list, DefaultSeparator, enc)
			require.NoError(t, err)

			reparsed, err := Parse(built, DefaultSeparator, enc)
			require.NoError(t, err)
			require.Equal(t, list.Expose(), reparsed.Expose(), enc.String())
		}
	})
}
