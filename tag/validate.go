package tag

import "github.com/zydeco/nbtkit/format"

// TypeOf returns the NBT tag type code for v, or format.End if v is nil.
func TypeOf(v Value) format.TagType {
	if v == nil {
		return format.End
	}

	return v.Type()
}

// IsValidNBTObject reports whether v, and everything reachable from it,
// satisfies the NBT invariants: every List's elements agree with its
// declared element type, and every String encodes to at most 65535
// UTF-8 bytes. Unlike Validate, v need not be a Compound.
func IsValidNBTObject(v Value) bool {
	return validateValue(v) == nil
}

// Validate checks root against every NBT encoding invariant: the root
// must be a non-nil Compound, every List's elements must match its
// declared element type, and every String must fit in a u16 length
// prefix. It returns the first violation found, or nil if root is
// valid to encode.
func Validate(root *Compound) error {
	if root == nil {
		return ErrNotCompound
	}

	return validateValue(root)
}

func validateValue(v Value) error {
	switch val := v.(type) {
	case nil:
		return ErrUnknownTagType
	case Byte, Short, Int, Long, Float, Double:
		return nil
	case String:
		if len(val) > 65535 {
			return ErrStringTooLong
		}

		return nil
	case *ByteArray, *IntArray, *LongArray:
		return nil
	case *List:
		if err := val.Validate(); err != nil {
			return err
		}
		for _, e := range val.Elements {
			if err := validateValue(e); err != nil {
				return err
			}
		}

		return nil
	case *Compound:
		for _, e := range val.entries {
			if err := validateValue(e.value); err != nil {
				return err
			}
		}

		return nil
	default:
		return ErrUnknownTagType
	}
}
