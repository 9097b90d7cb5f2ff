package compress

import "github.com/zydeco/nbtkit/errs"

// Scheme identifies a region-file chunk's compression scheme byte:
// 1 = gzip, 2 = zlib.
type Scheme uint8

const (
	SchemeGzip Scheme = 1
	SchemeZlib Scheme = 2
)

// String returns the on-wire scheme's name.
func (s Scheme) String() string {
	switch s {
	case SchemeGzip:
		return "gzip"
	case SchemeZlib:
		return "zlib"
	default:
		return "unknown"
	}
}

// Compressor compresses a complete in-memory buffer.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a complete in-memory buffer previously
// produced by the matching Compressor.
type Decompressor interface {
	// Decompress decompresses data and returns the original result.
	//
	// Returns an error if data is corrupted or was not produced by the
	// matching compressor.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// ForScheme returns the built-in Codec for the given on-wire scheme byte.
func ForScheme(scheme Scheme) (Codec, error) {
	switch scheme {
	case SchemeGzip:
		return NewGzipCodec(), nil
	case SchemeZlib:
		return NewZlibCodec(), nil
	default:
		return nil, errs.Newf(errs.Type, "compress.ForScheme", "unknown compression scheme %d", scheme)
	}
}
