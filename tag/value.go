// Package tag implements the NBT value tree: the typed numeric leaves,
// primitive arrays, and the two container kinds (List, Compound) that
// together make up a decoded NBT document.
//
// Every concrete type in this package implements Value, a closed
// interface satisfied only by the twelve non-End tag kinds. Numeric
// leaves are distinct Go types (Byte, Short, Int, Long, Float, Double)
// so that a value's originating NBT width survives any amount of
// shuffling through Go code — re-encoding a decoded tree always emits
// the same widths it was decoded with.
package tag

import "github.com/zydeco/nbtkit/format"

// Value is implemented by every NBT value kind except End (End exists
// only on the wire, as the Compound terminator, and is never a value).
type Value interface {
	// Type returns the NBT tag type code for this value.
	Type() format.TagType

	// isValue restricts implementers to this package's types.
	isValue()
}
