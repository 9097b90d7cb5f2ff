package tag

import "github.com/zydeco/nbtkit/errs"

// checkRange validates that [start, end) is a valid sub-range of a
// sequence of length n: 0 <= start <= end <= n.
func checkRange(op string, start, end, n int) error {
	if start < 0 || end < start || end > n {
		return errs.Newf(errs.InvalidArg, op, "range [%d, %d) out of bounds for length %d", start, end, n)
	}

	return nil
}

// checkIndex validates that i is a valid index into a sequence of
// length n.
func checkIndex(op string, i, n int) error {
	if i < 0 || i >= n {
		return errs.Newf(errs.InvalidArg, op, "index %d out of range [0, %d)", i, n)
	}

	return nil
}
