package codec

import (
	"io"

	"github.com/zydeco/nbtkit/compress"
	"github.com/zydeco/nbtkit/endian"
	"github.com/zydeco/nbtkit/errs"
	"github.com/zydeco/nbtkit/format"
	"github.com/zydeco/nbtkit/internal/pool"
	"github.com/zydeco/nbtkit/tag"
)

// WriteRoot validates root and then encodes it to w as a complete NBT
// document: a root type byte (always Compound), the length-prefixed
// name, and the recursively encoded value tree.
//
// Validation happens before a single byte is written: if root fails
// Validate, WriteRoot returns that error and w is untouched.
//
// When opts.Compressed is set, the encoded bytes are buffered in
// memory, compressed with the scheme opts selects, and only the
// compressed bytes are written to w. WriteRoot returns the number of
// bytes actually written to w (the compressed length when compression
// is enabled).
func WriteRoot(w io.Writer, name string, root *tag.Compound, opts Options) (n int64, err error) {
	if err := Validate(root); err != nil {
		return 0, err
	}

	if !opts.Compressed() {
		counting := &countingWriter{w: w}
		sw := newStreamWriter(counting, endian.Select(opts.LittleEndian()))
		if err := writeDocument(sw, name, root); err != nil {
			return counting.n, err
		}

		return counting.n, nil
	}

	buf := pool.GetDocumentBuffer()
	defer pool.PutDocumentBuffer(buf)

	sw := newStreamWriter(buf, endian.Select(opts.LittleEndian()))
	if err := writeDocument(sw, name, root); err != nil {
		return 0, err
	}

	codec, err := compress.ForScheme(opts.scheme())
	if err != nil {
		return 0, errs.Wrap(errs.InvalidArg, "codec.WriteRoot", err)
	}

	compressed, err := codec.Compress(buf.Bytes())
	if err != nil {
		return 0, errs.Wrap(errs.Write, "codec.WriteRoot", err)
	}

	written, err := w.Write(compressed)
	if err != nil {
		return int64(written), errs.Wrap(errs.Write, "codec.WriteRoot", err)
	}

	return int64(written), nil
}

func writeDocument(sw *streamWriter, name string, root *tag.Compound) error {
	if err := sw.WriteI8(int8(format.Compound)); err != nil {
		return err
	}
	if err := sw.WriteString(name); err != nil {
		return err
	}

	return writeCompound(sw, root)
}

// countingWriter tracks the number of bytes written through it, used so
// WriteRoot can report bytesWritten even for the uncompressed path
// where no intermediate buffer exists.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(b []byte) (int, error) {
	n, err := cw.w.Write(b)
	cw.n += int64(n)

	return n, err
}

func writeValue(sw *streamWriter, v tag.Value) error {
	switch val := v.(type) {
	case tag.Byte:
		return sw.WriteI8(int8(val))
	case tag.Short:
		return sw.WriteI16(int16(val))
	case tag.Int:
		return sw.WriteI32(int32(val))
	case tag.Long:
		return sw.WriteI64(int64(val))
	case tag.Float:
		return sw.WriteF32(float32(val))
	case tag.Double:
		return sw.WriteF64(float64(val))
	case tag.String:
		return sw.WriteString(string(val))
	case *tag.ByteArray:
		return writeByteArray(sw, val)
	case *tag.IntArray:
		return writeIntArray(sw, val)
	case *tag.LongArray:
		return writeLongArray(sw, val)
	case *tag.List:
		return writeList(sw, val)
	case *tag.Compound:
		return writeCompound(sw, val)
	default:
		return errs.Newf(errs.InvalidArg, "codec.writeValue", "unsupported value kind %T", v)
	}
}

func writeByteArray(sw *streamWriter, a *tag.ByteArray) error {
	values := a.Values()
	if err := sw.WriteI32(int32(len(values))); err != nil {
		return err
	}

	raw := make([]byte, len(values))
	for i, v := range values {
		raw[i] = byte(v)
	}

	return sw.WriteBytes(raw)
}

func writeIntArray(sw *streamWriter, a *tag.IntArray) error {
	values := a.Values()
	if err := sw.WriteI32(int32(len(values))); err != nil {
		return err
	}

	for _, v := range values {
		if err := sw.WriteI32(v); err != nil {
			return err
		}
	}

	return nil
}

func writeLongArray(sw *streamWriter, a *tag.LongArray) error {
	values := a.Values()
	if err := sw.WriteI32(int32(len(values))); err != nil {
		return err
	}

	for _, v := range values {
		if err := sw.WriteI64(v); err != nil {
			return err
		}
	}

	return nil
}

func writeList(sw *streamWriter, l *tag.List) error {
	elemType := l.ElementType
	if l.Len() == 0 {
		elemType = format.End
	}

	if err := sw.WriteI8(int8(elemType)); err != nil {
		return err
	}
	if err := sw.WriteI32(int32(l.Len())); err != nil {
		return err
	}

	for _, e := range l.Elements {
		if err := writeValue(sw, e); err != nil {
			return err
		}
	}

	return nil
}

func writeCompound(sw *streamWriter, c *tag.Compound) error {
	for name, v := range c.All() {
		if err := sw.WriteI8(int8(v.Type())); err != nil {
			return err
		}
		if err := sw.WriteString(name); err != nil {
			return err
		}
		if err := writeValue(sw, v); err != nil {
			return err
		}
	}

	return sw.WriteI8(int8(format.End))
}
