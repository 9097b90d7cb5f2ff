package tag

import (
	"fmt"

	"github.com/zydeco/nbtkit/errs"
	"github.com/zydeco/nbtkit/format"
)

// Package-level sentinels for the value-tree invariants this package
// enforces. Callers can match a specific failure with errors.Is, or
// the coarser failure category with errs.Is(err, errs.Kind).
var (
	ErrListEmpty      = errs.New(errs.InvalidArg, "tag.NewListOf", "cannot infer element type from an empty list")
	ErrListMixedTypes = errs.New(errs.InvalidArg, "tag.NewListOf", "all elements must share the same tag type")
	ErrStringTooLong  = errs.New(errs.InvalidArg, "tag", "string exceeds 65535 UTF-8 bytes")
	ErrNotCompound    = errs.New(errs.InvalidArg, "tag", "root value is not a Compound")
	ErrUnknownTagType = errs.New(errs.InvalidArg, "tag", "value does not implement a known NBT leaf kind")

	// ErrListTypeMismatch is the sentinel wrapped by a List's per-element
	// validation failure; errListElementType adds the offending index and
	// types without losing errors.Is-comparability against it.
	ErrListTypeMismatch = errs.New(errs.Type, "tag", "list element has an unexpected tag type")
)

func errListElementType(index int, want, got format.TagType) error {
	return errs.Wrap(errs.Type, "tag.List.Validate",
		fmt.Errorf("%w: element %d has type %s, want %s", ErrListTypeMismatch, index, got, want))
}
