package tag

import "github.com/zydeco/nbtkit/format"

// IntArray represents a variable-sized array of 32-bit signed integers,
// the NBT IntArray tag type. Distinct from a List<Int>: the wire
// encoding is a bare i32 length followed by that many i32 values, no
// per-element type tag.
type IntArray struct {
	values []int32
}

func (*IntArray) Type() format.TagType { return format.IntArray }
func (*IntArray) isValue()             {}

// NewIntArray creates an IntArray containing a copy of values.
func NewIntArray(values []int32) *IntArray {
	cp := make([]int32, len(values))
	copy(cp, values)

	return &IntArray{values: cp}
}

// NewIntArrayZeroed creates an IntArray of count zero values.
func NewIntArrayZeroed(count int) *IntArray {
	return &IntArray{values: make([]int32, count)}
}

// NewIntArrayWithCapacity creates an empty IntArray that can hold
// capacity values before it needs to reallocate.
func NewIntArrayWithCapacity(capacity int) *IntArray {
	return &IntArray{values: make([]int32, 0, capacity)}
}

// Len returns the number of elements in the array.
func (a *IntArray) Len() int {
	return len(a.values)
}

// Values returns a copy of the array's elements.
func (a *IntArray) Values() []int32 {
	cp := make([]int32, len(a.values))
	copy(cp, a.values)

	return cp
}

// At returns the value at index i.
func (a *IntArray) At(i int) (int32, error) {
	if err := checkIndex("tag.IntArray.At", i, len(a.values)); err != nil {
		return 0, err
	}

	return a.values[i], nil
}

// Append adds a single value to the array.
func (a *IntArray) Append(v int32) {
	a.values = append(a.values, v)
}

// AppendSlice adds the values of vs to the array, in order.
func (a *IntArray) AppendSlice(vs []int32) {
	a.values = append(a.values, vs...)
}

// AppendArray adds the elements of other to the array, in order.
func (a *IntArray) AppendArray(other *IntArray) {
	if other == nil {
		return
	}
	a.values = append(a.values, other.values...)
}

// ReplaceRange replaces the elements in [start, end) with values,
// shrinking or growing the array as needed.
func (a *IntArray) ReplaceRange(start, end int, values []int32) error {
	if err := checkRange("tag.IntArray.ReplaceRange", start, end, len(a.values)); err != nil {
		return err
	}

	tail := append([]int32{}, a.values[end:]...)
	a.values = append(a.values[:start:start], values...)
	a.values = append(a.values, tail...)

	return nil
}

// ResetRange fills the elements in [start, end) with zero.
func (a *IntArray) ResetRange(start, end int) error {
	if err := checkRange("tag.IntArray.ResetRange", start, end, len(a.values)); err != nil {
		return err
	}

	for i := start; i < end; i++ {
		a.values[i] = 0
	}

	return nil
}
