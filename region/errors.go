package region

import "github.com/zydeco/nbtkit/errs"

// Package-level sentinels for the region-file invariants this package
// enforces. Callers can match a specific failure with errors.Is, or
// the coarser failure category with errs.Is(err, errs.Kind).
var (
	ErrCoordOutOfRange = errs.New(errs.InvalidArg, "region", "chunk coordinates must be in [0, 31]")
	ErrTruncated       = errs.New(errs.Read, "region.Open", "file is shorter than the 8192 byte header")
	ErrOverlap         = errs.New(errs.InvalidArg, "region.Open", "two chunk slots claim overlapping sectors")
	ErrOutOfFile       = errs.New(errs.InvalidArg, "region.Open", "a chunk slot claims sectors past the end of the file")
	ErrReservedSector  = errs.New(errs.InvalidArg, "region.Open", "a chunk slot claims a header sector")
)
