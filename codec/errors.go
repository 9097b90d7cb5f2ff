package codec

import "github.com/zydeco/nbtkit/errs"

// ErrUnknownTagType is the sentinel wrapped whenever the wire contains
// a type byte outside the End..LongArray range, whether as a value's
// own type, a Compound entry's type, or a List's declared element
// type. Matching call sites add the offending byte and location
// without losing errors.Is-comparability against it.
var ErrUnknownTagType = errs.New(errs.Type, "codec", "tag type byte does not name a known NBT tag")
