package codec

import (
	"fmt"
	"io"
	"math"

	"github.com/zydeco/nbtkit/endian"
	"github.com/zydeco/nbtkit/errs"
	"github.com/zydeco/nbtkit/tag"
)

// maxStringLen is the largest UTF-8 byte length a String value may
// encode to; the wire length prefix is a u16.
const maxStringLen = 65535

// streamReader reads NBT primitives from an underlying io.Reader in a
// configured byte order. A short read at end-of-stream is reported as
// errs.Read.
type streamReader struct {
	r      io.Reader
	engine endian.EndianEngine
	scratch [8]byte
}

func newStreamReader(r io.Reader, engine endian.EndianEngine) *streamReader {
	return &streamReader{r: r, engine: engine}
}

func (sr *streamReader) readFull(n int) ([]byte, error) {
	buf := sr.scratch[:n]
	if _, err := io.ReadFull(sr.r, buf); err != nil {
		return nil, errs.Wrap(errs.Read, "codec.streamReader", err)
	}

	return buf, nil
}

// ReadBytes reads and returns exactly n raw bytes.
func (sr *streamReader) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(sr.r, buf); err != nil {
		return nil, errs.Wrap(errs.Read, "codec.streamReader.ReadBytes", err)
	}

	return buf, nil
}

func (sr *streamReader) ReadI8() (int8, error) {
	b, err := sr.readFull(1)
	if err != nil {
		return 0, err
	}

	return int8(b[0]), nil
}

func (sr *streamReader) ReadU8() (uint8, error) {
	b, err := sr.readFull(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

func (sr *streamReader) ReadI16() (int16, error) {
	b, err := sr.readFull(2)
	if err != nil {
		return 0, err
	}

	return int16(sr.engine.Uint16(b)), nil
}

func (sr *streamReader) ReadI32() (int32, error) {
	b, err := sr.readFull(4)
	if err != nil {
		return 0, err
	}

	return int32(sr.engine.Uint32(b)), nil
}

func (sr *streamReader) ReadI64() (int64, error) {
	b, err := sr.readFull(8)
	if err != nil {
		return 0, err
	}

	return int64(sr.engine.Uint64(b)), nil
}

func (sr *streamReader) ReadF32() (float32, error) {
	b, err := sr.readFull(4)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(sr.engine.Uint32(b)), nil
}

func (sr *streamReader) ReadF64() (float64, error) {
	b, err := sr.readFull(8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(sr.engine.Uint64(b)), nil
}

// ReadString reads a u16-length-prefixed UTF-8 string.
func (sr *streamReader) ReadString() (string, error) {
	n, err := sr.ReadU16()
	if err != nil {
		return "", err
	}

	if n == 0 {
		return "", nil
	}

	buf, err := sr.ReadBytes(int(n))
	if err != nil {
		return "", errs.Wrap(errs.Read, "codec.streamReader.ReadString", err)
	}

	return string(buf), nil
}

func (sr *streamReader) ReadU16() (uint16, error) {
	b, err := sr.readFull(2)
	if err != nil {
		return 0, err
	}

	return sr.engine.Uint16(b), nil
}

// streamWriter writes NBT primitives to an underlying io.Writer in a
// configured byte order. A short write is reported as errs.Write.
type streamWriter struct {
	w      io.Writer
	engine endian.EndianEngine
}

func newStreamWriter(w io.Writer, engine endian.EndianEngine) *streamWriter {
	return &streamWriter{w: w, engine: engine}
}

func (sw *streamWriter) write(b []byte) error {
	n, err := sw.w.Write(b)
	if err != nil {
		return errs.Wrap(errs.Write, "codec.streamWriter", err)
	}
	if n != len(b) {
		return errs.New(errs.Write, "codec.streamWriter", "short write")
	}

	return nil
}

func (sw *streamWriter) WriteI8(v int8) error {
	return sw.write([]byte{byte(v)})
}

func (sw *streamWriter) WriteU8(v uint8) error {
	return sw.write([]byte{v})
}

func (sw *streamWriter) WriteI16(v int16) error {
	return sw.write(sw.engine.AppendUint16(nil, uint16(v)))
}

func (sw *streamWriter) WriteU16(v uint16) error {
	return sw.write(sw.engine.AppendUint16(nil, v))
}

func (sw *streamWriter) WriteI32(v int32) error {
	return sw.write(sw.engine.AppendUint32(nil, uint32(v)))
}

func (sw *streamWriter) WriteI64(v int64) error {
	return sw.write(sw.engine.AppendUint64(nil, uint64(v)))
}

func (sw *streamWriter) WriteF32(v float32) error {
	return sw.write(sw.engine.AppendUint32(nil, math.Float32bits(v)))
}

func (sw *streamWriter) WriteF64(v float64) error {
	return sw.write(sw.engine.AppendUint64(nil, math.Float64bits(v)))
}

func (sw *streamWriter) WriteBytes(b []byte) error {
	return sw.write(b)
}

// WriteString writes s as a u16-length-prefixed UTF-8 string. Returns
// a wrapped tag.ErrStringTooLong if s's UTF-8 form exceeds
// maxStringLen bytes.
func (sw *streamWriter) WriteString(s string) error {
	if len(s) > maxStringLen {
		return errs.Wrap(errs.InvalidArg, "codec.streamWriter.WriteString",
			fmt.Errorf("%w: string of %d bytes exceeds the %d byte limit", tag.ErrStringTooLong, len(s), maxStringLen))
	}

	if err := sw.WriteU16(uint16(len(s))); err != nil {
		return err
	}

	return sw.write([]byte(s))
}
