package tag

// ValuesEqual reports whether a and b are the same NBT value: equal
// numeric width and value, equal string content, equal array contents,
// equal list element type and contents, or equal compound contents. A
// Byte(1) and a Long(1) compare unequal, even though they are
// numerically equal, because emitting them produces different bytes.
func ValuesEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}

	switch av := a.(type) {
	case Byte:
		return av == b.(Byte)
	case Short:
		return av == b.(Short)
	case Int:
		return av == b.(Int)
	case Long:
		return av == b.(Long)
	case Float:
		return av == b.(Float)
	case Double:
		return av == b.(Double)
	case String:
		return av == b.(String)
	case *ByteArray:
		return byteSliceEqual(av.values, b.(*ByteArray).values)
	case *IntArray:
		return int32SliceEqual(av.values, b.(*IntArray).values)
	case *LongArray:
		return int64SliceEqual(av.values, b.(*LongArray).values)
	case *List:
		return listsEqual(av, b.(*List))
	case *Compound:
		return av.Equal(b.(*Compound))
	default:
		return false
	}
}

func listsEqual(a, b *List) bool {
	if a.ElementType != b.ElementType || len(a.Elements) != len(b.Elements) {
		return false
	}
	for i := range a.Elements {
		if !ValuesEqual(a.Elements[i], b.Elements[i]) {
			return false
		}
	}

	return true
}

func byteSliceEqual(a, b []int8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func int32SliceEqual(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func int64SliceEqual(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
