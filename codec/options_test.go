package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zydeco/nbtkit/compress"
)

func TestDefaultOptions(t *testing.T) {
	var o Options
	assert.False(t, o.LittleEndian())
	assert.False(t, o.Compressed())
	assert.False(t, o.UseZlib())
}

func TestNewOptionsLittleEndian(t *testing.T) {
	o := NewOptions(WithLittleEndian())
	assert.True(t, o.LittleEndian())
	assert.False(t, o.Compressed())
}

func TestNewOptionsCompressionGzip(t *testing.T) {
	o := NewOptions(WithCompression(compress.SchemeGzip))
	assert.True(t, o.Compressed())
	assert.False(t, o.UseZlib())
	assert.Equal(t, compress.SchemeGzip, o.scheme())
}

func TestNewOptionsCompressionZlib(t *testing.T) {
	o := NewOptions(WithCompression(compress.SchemeZlib))
	assert.True(t, o.Compressed())
	assert.True(t, o.UseZlib())
	assert.Equal(t, compress.SchemeZlib, o.scheme())
}

func TestNewOptionsCombined(t *testing.T) {
	o := NewOptions(WithLittleEndian(), WithCompression(compress.SchemeZlib))
	assert.True(t, o.LittleEndian())
	assert.True(t, o.Compressed())
	assert.True(t, o.UseZlib())
}
