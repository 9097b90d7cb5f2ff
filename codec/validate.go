package codec

import "github.com/zydeco/nbtkit/tag"

// Validate checks root against every NBT encoding invariant WriteRoot
// enforces, without encoding a single byte. It is exported standalone
// so callers (and nbtkit.IsValidNBTObject) can validate a tree before
// committing to an encode.
func Validate(root *tag.Compound) error {
	return tag.Validate(root)
}
