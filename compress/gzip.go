package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/zydeco/nbtkit/errs"
)

// GzipCodec implements Codec using gzip (RFC 1952) framing. This is the
// default compression for standalone NBT documents.
type GzipCodec struct{}

var _ Codec = GzipCodec{}

// NewGzipCodec creates a gzip Codec.
func NewGzipCodec() GzipCodec {
	return GzipCodec{}
}

// Compress gzip-compresses data.
func (GzipCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, errs.Wrap(errs.Write, "compress.GzipCodec.Compress", err)
	}
	if err := w.Close(); err != nil {
		return nil, errs.Wrap(errs.Write, "compress.GzipCodec.Compress", err)
	}

	return buf.Bytes(), nil
}

// Decompress reverses Compress.
func (GzipCodec) Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errs.Wrap(errs.Read, "compress.GzipCodec.Decompress", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, errs.Wrap(errs.Read, "compress.GzipCodec.Decompress", err)
	}

	return out, nil
}
