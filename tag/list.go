package tag

import "github.com/zydeco/nbtkit/format"

// List represents the NBT List tag type: a homogeneous, length-prefixed
// sequence of unnamed values. An empty list may carry any declared
// element type (canonically End); a non-empty list's ElementType must
// equal the Type() of every element — the codec's writer validates this
// before encoding a byte.
type List struct {
	ElementType format.TagType
	Elements    []Value
}

func (*List) Type() format.TagType { return format.List }
func (*List) isValue()             {}

// NewList creates an empty List with the given declared element type.
func NewList(elementType format.TagType) *List {
	return &List{ElementType: elementType}
}

// NewListOf creates a List from elements, inferring the element type
// from the first element. Returns an error if elements is empty (use
// NewList for an empty list with an explicit type) or if any element's
// type disagrees with the first.
func NewListOf(elements []Value) (*List, error) {
	if len(elements) == 0 {
		return nil, ErrListEmpty
	}

	elemType := elements[0].Type()
	for _, e := range elements {
		if e.Type() != elemType {
			return nil, ErrListMixedTypes
		}
	}

	cp := make([]Value, len(elements))
	copy(cp, elements)

	return &List{ElementType: elemType, Elements: cp}, nil
}

// Len returns the number of elements in the list.
func (l *List) Len() int {
	return len(l.Elements)
}

// Append adds v to the list. It does not check v's type against
// ElementType; use Validate (or let the codec's writer validate) before
// encoding.
func (l *List) Append(v Value) {
	l.Elements = append(l.Elements, v)
}

// Validate reports whether every element's type matches ElementType. An
// empty list is always valid.
func (l *List) Validate() error {
	for i, e := range l.Elements {
		if e.Type() != l.ElementType {
			return errListElementType(i, l.ElementType, e.Type())
		}
	}

	return nil
}
