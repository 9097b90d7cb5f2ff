// Package compress provides the compression codecs used by the NBT wire
// format and the region file's chunk payloads.
//
// The NBT/region formats recognize exactly two framings: gzip (RFC 1952),
// used by default for standalone compressed NBT documents, and zlib
// (RFC 1950), which region-file chunk payloads are always written with
// (scheme byte 2) and which standalone documents may also select. This package wraps klauspost/compress's gzip and zlib
// implementations behind a small Compressor/Decompressor/Codec interface
// so the rest of nbtkit never imports a compression library directly.
//
// # Usage
//
//	codec, err := compress.ForScheme(compress.SchemeZlib)
//	compressed, err := codec.Compress(payload)
//	...
//	original, err := codec.Decompress(compressed)
package compress
