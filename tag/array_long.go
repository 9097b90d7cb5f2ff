package tag

import "github.com/zydeco/nbtkit/format"

// LongArray represents a variable-sized array of 64-bit signed integers,
// the NBT LongArray tag type. Distinct from a List<Long>: the wire
// encoding is a bare i32 length followed by that many i64 values, no
// per-element type tag.
type LongArray struct {
	values []int64
}

func (*LongArray) Type() format.TagType { return format.LongArray }
func (*LongArray) isValue()             {}

// NewLongArray creates a LongArray containing a copy of values.
func NewLongArray(values []int64) *LongArray {
	cp := make([]int64, len(values))
	copy(cp, values)

	return &LongArray{values: cp}
}

// NewLongArrayZeroed creates a LongArray of count zero values.
func NewLongArrayZeroed(count int) *LongArray {
	return &LongArray{values: make([]int64, count)}
}

// NewLongArrayWithCapacity creates an empty LongArray that can hold
// capacity values before it needs to reallocate.
func NewLongArrayWithCapacity(capacity int) *LongArray {
	return &LongArray{values: make([]int64, 0, capacity)}
}

// Len returns the number of elements in the array.
func (a *LongArray) Len() int {
	return len(a.values)
}

// Values returns a copy of the array's elements.
func (a *LongArray) Values() []int64 {
	cp := make([]int64, len(a.values))
	copy(cp, a.values)

	return cp
}

// At returns the value at index i.
func (a *LongArray) At(i int) (int64, error) {
	if err := checkIndex("tag.LongArray.At", i, len(a.values)); err != nil {
		return 0, err
	}

	return a.values[i], nil
}

// Append adds a single value to the array.
func (a *LongArray) Append(v int64) {
	a.values = append(a.values, v)
}

// AppendSlice adds the values of vs to the array, in order.
func (a *LongArray) AppendSlice(vs []int64) {
	a.values = append(a.values, vs...)
}

// AppendArray adds the elements of other to the array, in order.
func (a *LongArray) AppendArray(other *LongArray) {
	if other == nil {
		return
	}
	a.values = append(a.values, other.values...)
}

// ReplaceRange replaces the elements in [start, end) with values,
// shrinking or growing the array as needed.
func (a *LongArray) ReplaceRange(start, end int, values []int64) error {
	if err := checkRange("tag.LongArray.ReplaceRange", start, end, len(a.values)); err != nil {
		return err
	}

	tail := append([]int64{}, a.values[end:]...)
	a.values = append(a.values[:start:start], values...)
	a.values = append(a.values, tail...)

	return nil
}

// ResetRange fills the elements in [start, end) with zero.
func (a *LongArray) ResetRange(start, end int) error {
	if err := checkRange("tag.LongArray.ResetRange", start, end, len(a.values)); err != nil {
		return err
	}

	for i := start; i < end; i++ {
		a.values[i] = 0
	}

	return nil
}
