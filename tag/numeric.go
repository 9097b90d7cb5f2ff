package tag

import "github.com/zydeco/nbtkit/format"

// Byte is an NBT Byte value: an 8-bit signed integer.
type Byte int8

func (Byte) Type() format.TagType { return format.Byte }
func (Byte) isValue()             {}

// Short is an NBT Short value: a 16-bit signed integer.
type Short int16

func (Short) Type() format.TagType { return format.Short }
func (Short) isValue()             {}

// Int is an NBT Int value: a 32-bit signed integer.
type Int int32

func (Int) Type() format.TagType { return format.Int }
func (Int) isValue()             {}

// Long is an NBT Long value: a 64-bit signed integer.
type Long int64

func (Long) Type() format.TagType { return format.Long }
func (Long) isValue()             {}

// Float is an NBT Float value: an IEEE-754 binary32 float.
type Float float32

func (Float) Type() format.TagType { return format.Float }
func (Float) isValue()             {}

// Double is an NBT Double value: an IEEE-754 binary64 float.
type Double float64

func (Double) Type() format.TagType { return format.Double }
func (Double) isValue()             {}

// String is an NBT String value: a length-prefixed UTF-8 string (the
// on-wire length prefix is a u16, so encoding rejects strings whose
// UTF-8 form exceeds 65535 bytes).
type String string

func (String) Type() format.TagType { return format.String }
func (String) isValue()             {}
