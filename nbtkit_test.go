package nbtkit

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zydeco/nbtkit/codec"
	"github.com/zydeco/nbtkit/compress"
	"github.com/zydeco/nbtkit/tag"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	root := tag.NewCompound()
	root.Put("x", tag.Int(42))

	var buf bytes.Buffer
	_, err := EncodeNBT(&buf, "hello", root, 0)
	require.NoError(t, err)

	name, got, err := DecodeNBT(&buf, 0)
	require.NoError(t, err)
	assert.Equal(t, "hello", name)
	assert.True(t, root.Equal(got))
}

func TestEncodeDecodeRoundTripCompressed(t *testing.T) {
	root := tag.NewCompound()
	root.Put("x", tag.Int(42))

	opts := codec.NewOptions(codec.WithCompression(compress.SchemeGzip))

	var buf bytes.Buffer
	_, err := EncodeNBT(&buf, "doc", root, opts)
	require.NoError(t, err)

	name, got, err := DecodeNBT(&buf, opts)
	require.NoError(t, err)
	assert.Equal(t, "doc", name)
	assert.True(t, root.Equal(got))
}

func TestIsValidNBTObjectAndTypeOf(t *testing.T) {
	assert.True(t, IsValidNBTObject(tag.Int(1)))
	assert.False(t, IsValidNBTObject(nil))

	assert.Equal(t, tag.Int(1).Type(), TypeOf(tag.Int(1)))
}

func TestOpenRegionAndRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.0.0.mca")

	r, err := OpenRegion(path)
	require.NoError(t, err)
	defer r.Close()

	chunk := tag.NewCompound()
	chunk.Put("x", tag.Int(1))

	ok, err := r.SetChunk(0, 0, chunk)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := r.GetChunk(0, 0)
	require.NoError(t, err)
	assert.True(t, chunk.Equal(got))
}
