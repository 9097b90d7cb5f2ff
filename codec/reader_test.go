package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zydeco/nbtkit/tag"
)

// TestReadRootEmptyCompound decodes an empty root compound,
// uncompressed, big-endian.
func TestReadRootEmptyCompound(t *testing.T) {
	wire := []byte{0x0A, 0x00, 0x00, 0x00}

	name, root, err := ReadRoot(bytes.NewReader(wire), 0)
	require.NoError(t, err)
	assert.Equal(t, "", name)
	assert.Equal(t, 0, root.Len())
}

// TestReadRootSingleInt decodes a named root compound ("hello")
// holding a single Int field.
func TestReadRootSingleInt(t *testing.T) {
	wire := []byte{
		0x0A, 0x00, 0x05, 'h', 'e', 'l', 'l', 'o',
		0x03, 0x00, 0x01, 'x', 0x00, 0x00, 0x00, 0x2A,
		0x00,
	}

	name, root, err := ReadRoot(bytes.NewReader(wire), 0)
	require.NoError(t, err)
	assert.Equal(t, "hello", name)

	v, ok := root.Get("x")
	require.True(t, ok)
	assert.Equal(t, tag.Int(42), v)
}

// TestReadRootLittleEndianListOfLongs decodes a three-element
// List<Long> under key "L", little-endian.
func TestReadRootLittleEndianListOfLongs(t *testing.T) {
	wire := []byte{
		0x0A, 0x00, 0x00,
		0x09, 0x01, 0x00, 'L',
		0x04,
		0x03, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00,
	}

	name, root, err := ReadRoot(bytes.NewReader(wire), NewOptions(WithLittleEndian()))
	require.NoError(t, err)
	assert.Equal(t, "", name)

	v, ok := root.Get("L")
	require.True(t, ok)
	list := v.(*tag.List)
	require.Equal(t, 3, list.Len())
	assert.Equal(t, tag.Long(1), list.Elements[0])
	assert.Equal(t, tag.Long(2), list.Elements[1])
	assert.Equal(t, tag.Long(3), list.Elements[2])
}

func TestReadRootRejectsNonCompoundRoot(t *testing.T) {
	wire := []byte{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01}

	_, _, err := ReadRoot(bytes.NewReader(wire), 0)
	require.Error(t, err)
}

func TestReadRootRejectsUnknownTagType(t *testing.T) {
	wire := []byte{0x0A, 0x00, 0x00, 0x63, 0x00, 0x01, 'x'}

	_, _, err := ReadRoot(bytes.NewReader(wire), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTagType))
}

func TestReadRootTruncatedStream(t *testing.T) {
	wire := []byte{0x0A, 0x00, 0x05, 'h', 'e'}

	_, _, err := ReadRoot(bytes.NewReader(wire), 0)
	require.Error(t, err)
}

func TestReadRootIgnoresTrailingBytes(t *testing.T) {
	wire := []byte{0x0A, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF}

	name, root, err := ReadRoot(bytes.NewReader(wire), 0)
	require.NoError(t, err)
	assert.Equal(t, "", name)
	assert.Equal(t, 0, root.Len())
}

func TestReadRootDuplicateKeyLastWins(t *testing.T) {
	wire := []byte{
		0x0A, 0x00, 0x00,
		0x01, 0x00, 0x01, 'x', 0x01,
		0x01, 0x00, 0x01, 'x', 0x02,
		0x00,
	}

	_, root, err := ReadRoot(bytes.NewReader(wire), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, root.Len())
	v, _ := root.Get("x")
	assert.Equal(t, tag.Byte(2), v)
}
