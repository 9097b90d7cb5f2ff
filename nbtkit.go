// Package nbtkit implements the NBT (Named Binary Tag) binary format
// and the Minecraft region-file container built on top of it.
//
// The value tree (typed numeric leaves, primitive arrays, List,
// Compound) lives in package tag. The binary codec — decoding and
// encoding a named root value, with optional gzip/zlib compression —
// lives in package codec. The sector-addressed, 1024-chunk-slot region
// file engine lives in package region.
//
// This top-level package offers thin convenience wrappers over those
// three, for callers who don't need codec.Options' full builder or
// region.Region's full method set spelled out at every call site.
//
// # Basic usage
//
// Decoding a standalone, gzip-compressed NBT document:
//
//	f, _ := os.Open("level.dat")
//	name, root, err := nbtkit.DecodeNBT(f, codec.NewOptions(codec.WithCompression(compress.SchemeGzip)))
//
// Opening a region file and reading one chunk:
//
//	r, err := nbtkit.OpenRegion("r.0.0.mca")
//	chunk, err := r.GetChunk(3, 9)
package nbtkit

import (
	"io"

	"github.com/zydeco/nbtkit/codec"
	"github.com/zydeco/nbtkit/format"
	"github.com/zydeco/nbtkit/region"
	"github.com/zydeco/nbtkit/tag"
)

// DecodeNBT decodes a complete NBT document from r, per opts.
func DecodeNBT(r io.Reader, opts codec.Options) (name string, root *tag.Compound, err error) {
	return codec.ReadRoot(r, opts)
}

// EncodeNBT encodes root, under name, to w, per opts. It returns the
// number of bytes written to w.
func EncodeNBT(w io.Writer, name string, root *tag.Compound, opts codec.Options) (n int64, err error) {
	return codec.WriteRoot(w, name, root, opts)
}

// IsValidNBTObject reports whether v, and everything reachable from it,
// satisfies every NBT encoding invariant.
func IsValidNBTObject(v tag.Value) bool {
	return tag.IsValidNBTObject(v)
}

// TypeOf returns the NBT tag type code for v, or format.End if v is nil.
func TypeOf(v tag.Value) format.TagType {
	return tag.TypeOf(v)
}

// OpenRegion opens the region file at path, creating an empty one if it
// does not exist.
func OpenRegion(path string) (*region.Region, error) {
	return region.Open(path)
}
