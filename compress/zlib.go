package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/zydeco/nbtkit/errs"
)

// ZlibCodec implements Codec using zlib (RFC 1950) framing. The region
// file engine writes chunk payloads exclusively with this codec
// (scheme byte 2), though it tolerates reading gzip-framed chunks too.
type ZlibCodec struct{}

var _ Codec = ZlibCodec{}

// NewZlibCodec creates a zlib Codec.
func NewZlibCodec() ZlibCodec {
	return ZlibCodec{}
}

// Compress zlib-compresses data.
func (ZlibCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, errs.Wrap(errs.Write, "compress.ZlibCodec.Compress", err)
	}
	if err := w.Close(); err != nil {
		return nil, errs.Wrap(errs.Write, "compress.ZlibCodec.Compress", err)
	}

	return buf.Bytes(), nil
}

// Decompress reverses Compress.
func (ZlibCodec) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errs.Wrap(errs.Read, "compress.ZlibCodec.Decompress", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, errs.Wrap(errs.Read, "compress.ZlibCodec.Decompress", err)
	}

	return out, nil
}
