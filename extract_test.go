package querystring

import (
	"github.com/indigo-web/querystring/nested"
	"github.com/indigo-web/querystring/qerr"
	"testing"

	"github.com/stretchr/testify/require"
)

func extractStr(t *testing.T, query string) *nested.Map {
	m, err := Extract([]byte(query), DefaultSeparator, RFC3986)
	require.NoError(t, err)
	return m
}

func TestExtract(t *testing.T) {
	t.Run("nil and empty queries yield empty mappings", func(t *testing.T) {
		m, err := Extract(nil, DefaultSeparator, RFC3986)
		require.NoError(t, err)
		require.True(t, m.Empty())

		require.True(t, extractStr(t, "").Empty())
	})

	t.Run("flat keys with last-write-wins", func(t *testing.T) {
		require.Equal(t, `{"a":"2","b":"1"}`, extractStr(t, "a=1&b=1&a=2").String())
	})

	t.Run("absent values become empty strings", func(t *testing.T) {
		require.Equal(t, `{"flag":""}`, extractStr(t, "flag").String())
	})

	t.Run("values are decoded unconditionally", func(t *testing.T) {
		// %2E stays protected in Parse output, yet decodes here
		require.Equal(t, `{"a":"."}`, extractStr(t, "a=%2E").String())
		require.Equal(t, `{"a":"sp ace+"}`, extractStr(t, "a=sp%20ace%2B").String())
	})

	t.Run("empty brackets append sequentially", func(t *testing.T) {
		require.Equal(t, `{"foo":{"0":"bar","1":"baz"}}`, extractStr(t, "foo[]=bar&foo[]=baz").String())
	})

	t.Run("nested bracket groups", func(t *testing.T) {
		require.Equal(t,
			`{"arr":{"4":{"two":"fred"},"1":"sid"}}`,
			extractStr(t, "arr[4][two]=fred&arr[1]=sid").String())
	})

	t.Run("dots and spaces in flat prefixes are never mangled", func(t *testing.T) {
		require.Equal(t,
			`{"arr.test":{"1":"sid"},"arr test":{"4":{"two":"fred"}}}`,
			extractStr(t, "arr.test[1]=sid&arr test[4][two]=fred").String())
	})

	t.Run("malformed brackets degrade to flat keys", func(t *testing.T) {
		require.Equal(t,
			`{"arr[1":"sid","arr":{"4":"fred"}}`,
			extractStr(t, "arr[1=sid&arr[4][2=fred").String())
		require.Equal(t, `{"arr1]":"sid"}`, extractStr(t, "arr1]=sid").String())
	})

	t.Run("trailing garbage after the last group is dropped", func(t *testing.T) {
		require.Equal(t, `{"a":{"b":"1"}}`, extractStr(t, "a[b]junk=1").String())
	})

	t.Run("scalar entry is overwritten by a structural one", func(t *testing.T) {
		require.Equal(t, `{"a":{"b":"2"}}`, extractStr(t, "a=1&a[b]=2").String())
	})

	t.Run("pairs with empty names are discarded", func(t *testing.T) {
		require.Equal(t, `{"a":"1"}`, extractStr(t, "=ghost&a=1&").String())
	})

	t.Run("errors of parse pass through", func(t *testing.T) {
		_, err := Extract([]byte("a=\x01"), DefaultSeparator, RFC3986)
		require.ErrorIs(t, err, qerr.ErrMalformedQuery)

		_, err = Extract([]byte("a=b"), DefaultSeparator, Encoding(42))
		require.ErrorIs(t, err, qerr.ErrUnsupportedEncoding)
	})
}

func TestExtractRFC1738(t *testing.T) {
	m, err := Extract([]byte("arr[]=one+two"), DefaultSeparator, RFC1738)
	require.NoError(t, err)
	require.Equal(t, `{"arr":{"0":"one two"}}`, m.String())
}
