package tag

import "github.com/zydeco/nbtkit/format"

// ByteArray represents a variable-sized array of 8-bit signed integers,
// the NBT ByteArray tag type. It is distinct from a List<Byte>: the
// wire encoding is a bare i32 length followed by that many raw bytes,
// with no per-element type tag.
type ByteArray struct {
	values []int8
}

func (*ByteArray) Type() format.TagType { return format.ByteArray }
func (*ByteArray) isValue()             {}

// NewByteArray creates a ByteArray containing a copy of values.
func NewByteArray(values []int8) *ByteArray {
	cp := make([]int8, len(values))
	copy(cp, values)

	return &ByteArray{values: cp}
}

// NewByteArrayZeroed creates a ByteArray of count zero values.
func NewByteArrayZeroed(count int) *ByteArray {
	return &ByteArray{values: make([]int8, count)}
}

// NewByteArrayWithCapacity creates an empty ByteArray that can hold
// capacity values before it needs to reallocate.
func NewByteArrayWithCapacity(capacity int) *ByteArray {
	return &ByteArray{values: make([]int8, 0, capacity)}
}

// Len returns the number of elements in the array.
func (a *ByteArray) Len() int {
	return len(a.values)
}

// Values returns a copy of the array's elements.
func (a *ByteArray) Values() []int8 {
	cp := make([]int8, len(a.values))
	copy(cp, a.values)

	return cp
}

// At returns the value at index i.
func (a *ByteArray) At(i int) (int8, error) {
	if err := checkIndex("tag.ByteArray.At", i, len(a.values)); err != nil {
		return 0, err
	}

	return a.values[i], nil
}

// Append adds a single value to the array.
func (a *ByteArray) Append(v int8) {
	a.values = append(a.values, v)
}

// AppendSlice adds the values of vs to the array, in order.
func (a *ByteArray) AppendSlice(vs []int8) {
	a.values = append(a.values, vs...)
}

// AppendArray adds the elements of other to the array, in order.
func (a *ByteArray) AppendArray(other *ByteArray) {
	if other == nil {
		return
	}
	a.values = append(a.values, other.values...)
}

// ReplaceRange replaces the elements in [start, end) with values. If
// len(values) != end-start, the array grows or shrinks accordingly and
// elements past end are shifted. Passing an empty values with a
// non-empty range deletes that range; passing a zero-length range
// inserts values at start.
func (a *ByteArray) ReplaceRange(start, end int, values []int8) error {
	if err := checkRange("tag.ByteArray.ReplaceRange", start, end, len(a.values)); err != nil {
		return err
	}

	tail := append([]int8{}, a.values[end:]...)
	a.values = append(a.values[:start:start], values...)
	a.values = append(a.values, tail...)

	return nil
}

// ResetRange fills the elements in [start, end) with zero.
func (a *ByteArray) ResetRange(start, end int) error {
	if err := checkRange("tag.ByteArray.ResetRange", start, end, len(a.values)); err != nil {
		return err
	}

	for i := start; i < end; i++ {
		a.values[i] = 0
	}

	return nil
}
