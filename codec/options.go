// Package codec implements the NBT binary wire format: reading and
// writing a named root value to and from a byte stream, with optional
// gzip/zlib compression and a choice of byte order.
package codec

import (
	"github.com/zydeco/nbtkit/compress"
	"github.com/zydeco/nbtkit/internal/options"
)

// bit positions within Options' packed flag field.
const (
	bitLittleEndian = 1 << iota
	bitCompressed
	bitUseZlib
)

// Options is a bit-packed set of codec tuning knobs: a small
// fixed-width integer with named bit accessors rather than a struct of
// bools, cheap to copy and pass by value.
type Options uint8

// LittleEndian reports whether multi-byte values are read/written in
// little-endian order. NBT's wire default is big-endian.
func (o Options) LittleEndian() bool {
	return o&bitLittleEndian != 0
}

// Compressed reports whether the stream is gzip- or zlib-wrapped.
func (o Options) Compressed() bool {
	return o&bitCompressed != 0
}

// UseZlib reports whether, when Compressed is set, the stream uses
// zlib framing instead of gzip. Region-file chunk payloads are always
// zlib; standalone documents default to gzip.
func (o Options) UseZlib() bool {
	return o&bitUseZlib != 0
}

// scheme returns the compress.Scheme implied by this option set.
// Callers must check Compressed() first.
func (o Options) scheme() compress.Scheme {
	if o.UseZlib() {
		return compress.SchemeZlib
	}

	return compress.SchemeGzip
}

// WithLittleEndian sets the little-endian bit.
func WithLittleEndian() *options.Func[*Options] {
	return options.NoError(func(o *Options) { *o |= bitLittleEndian })
}

// WithCompression enables compression, using the given scheme. Passing
// compress.SchemeZlib also sets UseZlib; any other scheme (including
// compress.SchemeGzip) leaves gzip as the framing.
func WithCompression(scheme compress.Scheme) *options.Func[*Options] {
	return options.NoError(func(o *Options) {
		*o |= bitCompressed
		if scheme == compress.SchemeZlib {
			*o |= bitUseZlib
		}
	})
}

// NewOptions builds an Options value from functional options, e.g.
//
//	codec.NewOptions(codec.WithLittleEndian(), codec.WithCompression(compress.SchemeZlib))
func NewOptions(opts ...options.Option[*Options]) Options {
	var o Options
	_ = options.Apply(&o, opts...)

	return o
}
