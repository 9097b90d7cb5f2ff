package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/zydeco/nbtkit/compress"
	"github.com/zydeco/nbtkit/endian"
	"github.com/zydeco/nbtkit/errs"
	"github.com/zydeco/nbtkit/format"
	"github.com/zydeco/nbtkit/tag"
)

// ReadRoot decodes a complete NBT document from r: a root type byte, a
// length-prefixed name, and the recursively decoded value tree.
//
// If opts.Compressed is set, the entire remainder of r is read,
// decompressed with the scheme opts selects, and the decoded stream
// becomes the decompressed bytes instead of r itself.
//
// Extra bytes past the end of the root value are not treated as an
// error. When uncompressed, they are left unread in r; when compressed,
// r has already been read to its end, and extra decompressed bytes are
// ignored.
func ReadRoot(r io.Reader, opts Options) (name string, root *tag.Compound, err error) {
	if opts.Compressed() {
		raw, readErr := io.ReadAll(r)
		if readErr != nil {
			return "", nil, errs.Wrap(errs.Read, "codec.ReadRoot", readErr)
		}

		codec, codecErr := compress.ForScheme(opts.scheme())
		if codecErr != nil {
			return "", nil, errs.Wrap(errs.InvalidArg, "codec.ReadRoot", codecErr)
		}

		plain, decErr := codec.Decompress(raw)
		if decErr != nil {
			return "", nil, errs.Wrap(errs.Read, "codec.ReadRoot", decErr)
		}

		r = bytes.NewReader(plain)
	}

	sr := newStreamReader(r, endian.Select(opts.LittleEndian()))

	rootType, err := sr.ReadI8()
	if err != nil {
		return "", nil, err
	}

	t := format.TagType(rootType)
	if t == format.End {
		return "", tag.NewCompound(), nil
	}

	if !t.IsValid() {
		return "", nil, errs.Wrap(errs.Type, "codec.ReadRoot", fmt.Errorf("%w: byte %d", ErrUnknownTagType, rootType))
	}

	name, err = sr.ReadString()
	if err != nil {
		return "", nil, err
	}

	if t != format.Compound {
		return "", nil, errs.Newf(errs.Type, "codec.ReadRoot", "root value must be a Compound, got %s", t)
	}

	v, err := readValue(sr, t)
	if err != nil {
		return "", nil, err
	}

	return name, v.(*tag.Compound), nil
}

// readValue decodes a single unnamed value of the given declared type.
func readValue(sr *streamReader, t format.TagType) (tag.Value, error) {
	switch t {
	case format.Byte:
		v, err := sr.ReadI8()
		return tag.Byte(v), err
	case format.Short:
		v, err := sr.ReadI16()
		return tag.Short(v), err
	case format.Int:
		v, err := sr.ReadI32()
		return tag.Int(v), err
	case format.Long:
		v, err := sr.ReadI64()
		return tag.Long(v), err
	case format.Float:
		v, err := sr.ReadF32()
		return tag.Float(v), err
	case format.Double:
		v, err := sr.ReadF64()
		return tag.Double(v), err
	case format.String:
		v, err := sr.ReadString()
		return tag.String(v), err
	case format.ByteArray:
		return readByteArray(sr)
	case format.IntArray:
		return readIntArray(sr)
	case format.LongArray:
		return readLongArray(sr)
	case format.List:
		return readList(sr)
	case format.Compound:
		return readCompound(sr)
	default:
		return nil, errs.Wrap(errs.Type, "codec.readValue", fmt.Errorf("%w: byte %d", ErrUnknownTagType, t))
	}
}

func readByteArray(sr *streamReader) (tag.Value, error) {
	n, err := sr.ReadI32()
	if err != nil {
		return nil, err
	}

	if n < 0 {
		return nil, errs.Newf(errs.Type, "codec.readByteArray", "negative array length %d", n)
	}

	raw, err := sr.ReadBytes(int(n))
	if err != nil {
		return nil, err
	}

	values := make([]int8, len(raw))
	for i, b := range raw {
		values[i] = int8(b)
	}

	return tag.NewByteArray(values), nil
}

func readIntArray(sr *streamReader) (tag.Value, error) {
	n, err := sr.ReadI32()
	if err != nil {
		return nil, err
	}

	if n < 0 {
		return nil, errs.Newf(errs.Type, "codec.readIntArray", "negative array length %d", n)
	}

	values := make([]int32, n)
	for i := range values {
		values[i], err = sr.ReadI32()
		if err != nil {
			return nil, err
		}
	}

	return tag.NewIntArray(values), nil
}

func readLongArray(sr *streamReader) (tag.Value, error) {
	n, err := sr.ReadI32()
	if err != nil {
		return nil, err
	}

	if n < 0 {
		return nil, errs.Newf(errs.Type, "codec.readLongArray", "negative array length %d", n)
	}

	values := make([]int64, n)
	for i := range values {
		values[i], err = sr.ReadI64()
		if err != nil {
			return nil, err
		}
	}

	return tag.NewLongArray(values), nil
}

func readList(sr *streamReader) (tag.Value, error) {
	elemTypeByte, err := sr.ReadI8()
	if err != nil {
		return nil, err
	}

	elemType := format.TagType(elemTypeByte)
	if !elemType.IsValid() {
		return nil, errs.Wrap(errs.Type, "codec.readList", fmt.Errorf("%w: byte %d", ErrUnknownTagType, elemTypeByte))
	}

	n, err := sr.ReadI32()
	if err != nil {
		return nil, err
	}

	list := tag.NewList(elemType)
	if n <= 0 {
		return list, nil
	}

	for i := int32(0); i < n; i++ {
		v, err := readValue(sr, elemType)
		if err != nil {
			return nil, err
		}
		list.Append(v)
	}

	return list, nil
}

func readCompound(sr *streamReader) (tag.Value, error) {
	c := tag.NewCompound()

	for {
		typeByte, err := sr.ReadI8()
		if err != nil {
			return nil, err
		}

		t := format.TagType(typeByte)
		if t == format.End {
			return c, nil
		}

		if !t.IsValid() {
			return nil, errs.Wrap(errs.Type, "codec.readCompound", fmt.Errorf("%w: byte %d", ErrUnknownTagType, typeByte))
		}

		name, err := sr.ReadString()
		if err != nil {
			return nil, err
		}

		v, err := readValue(sr, t)
		if err != nil {
			return nil, err
		}

		// Duplicate keys: the last occurrence wins, in its original
		// position — Compound.Put already implements this rule.
		c.Put(name, v)
	}
}
