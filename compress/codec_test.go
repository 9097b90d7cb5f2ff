package compress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zydeco/nbtkit/errs"
)

func TestGzipRoundTrip(t *testing.T) {
	codec := NewGzipCodec()
	original := []byte("the quick brown fox jumps over the lazy dog, repeated for compressibility "+
		"the quick brown fox jumps over the lazy dog")

	compressed, err := codec.Compress(original)
	require.NoError(t, err)
	assert.NotEqual(t, original, compressed)

	out, err := codec.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, out)
}

func TestZlibRoundTrip(t *testing.T) {
	codec := NewZlibCodec()
	original := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	compressed, err := codec.Compress(original)
	require.NoError(t, err)

	out, err := codec.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, original, out)
}

func TestEmptyInputRoundTrip(t *testing.T) {
	for _, codec := range []Codec{NewGzipCodec(), NewZlibCodec()} {
		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		out, err := codec.Decompress(compressed)
		require.NoError(t, err)
		assert.Empty(t, out)
	}
}

func TestForScheme(t *testing.T) {
	gz, err := ForScheme(SchemeGzip)
	require.NoError(t, err)
	assert.IsType(t, GzipCodec{}, gz)

	zl, err := ForScheme(SchemeZlib)
	require.NoError(t, err)
	assert.IsType(t, ZlibCodec{}, zl)

	_, err = ForScheme(Scheme(99))
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.Type))
}

func TestSchemeString(t *testing.T) {
	assert.Equal(t, "gzip", SchemeGzip.String())
	assert.Equal(t, "zlib", SchemeZlib.String())
	assert.Equal(t, "unknown", Scheme(0).String())
}

func TestZlibDecompressCorrupted(t *testing.T) {
	_, err := NewZlibCodec().Decompress([]byte{0xde, 0xad, 0xbe, 0xef})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.Read))
}
