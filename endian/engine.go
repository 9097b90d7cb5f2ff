// Package endian provides byte order utilities for binary encoding and decoding.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine interface.
// This enables cleaner API design and improved performance for binary data operations.
//
// # Basic Usage
//
// NBT's on-wire default is big-endian:
//
//	engine := endian.GetBigEndianEngine()
//
// The LittleEndian codec option switches to:
//
//	engine := endian.GetLittleEndianEngine()
//
// # Performance
//
// Using EndianEngine (which includes AppendByteOrder) avoids an extra
// allocation for appending operations compared to ByteOrder alone:
//
//	// Using EndianEngine (recommended)
//	buf = engine.AppendUint32(buf, length) // no temp buffer
//
//	// Using ByteOrder only
//	tmp := make([]byte, 4)
//	engine.PutUint32(tmp, length)
//	buf = append(buf, tmp...) // extra allocation
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine, NBT's default wire
// byte order.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Select returns the big-endian engine unless littleEndian is true, in
// which case it returns the little-endian engine. This mirrors the
// LittleEndian codec option directly.
func Select(littleEndian bool) EndianEngine {
	if littleEndian {
		return GetLittleEndianEngine()
	}

	return GetBigEndianEngine()
}
