package protocol

import "encoding/binary"

const (
	// SmartIntMax is the largest magnitude a SmartInt can carry.
	SmartIntMax uint16 = 32767

	smartOneByteMax uint16 = 127
	smartTwoByteTag uint16 = 0x8000

	obfuscationOffset uint8 = 128
)

// SmartInt is a self-delimiting unsigned integer. Values up to 127 take one
// byte; values up to SmartIntMax take two bytes with the high bit of the
// 16-bit quantity set.
type SmartInt uint16

func (SmartInt) Kind() Kind { return KindSmartInt }

// EncodeTo writes the one or two byte form. The two byte form uses the
// host serializer's native 16-bit layout in order.
func (v SmartInt) EncodeTo(s Sink, order binary.ByteOrder) error {
	switch n := uint16(v); {
	case n <= smartOneByteMax:
		return s.WriteU8(uint8(n))
	case n <= SmartIntMax:
		return s.WriteU16(n+smartTwoByteTag, order)
	default:
		return EncodingRangeError{Kind: KindSmartInt, Value: int64(n)}
	}
}

// Len returns the encoded width in bytes, or 0 if v is out of range.
func (v SmartInt) Len() int {
	switch {
	case uint16(v) <= smartOneByteMax:
		return 1
	case uint16(v) <= SmartIntMax:
		return 2
	default:
		return 0
	}
}

func (SmartInt) sealed() {}

// ObfuscatedByte is a byte shifted by 128, wrapping mod 256.
type ObfuscatedByte uint8

func (ObfuscatedByte) Kind() Kind { return KindObfuscatedByte }

func (v ObfuscatedByte) EncodeTo(s Sink, _ binary.ByteOrder) error {
	return s.WriteU8(uint8(v) + obfuscationOffset)
}

func (ObfuscatedByte) sealed() {}

// BigEndianShort is a uint16 that is always written most significant byte
// first, whatever the host order.
type BigEndianShort uint16

func (BigEndianShort) Kind() Kind { return KindBigEndianShort }

func (v BigEndianShort) EncodeTo(s Sink, _ binary.ByteOrder) error {
	return s.WriteU16(uint16(v), binary.BigEndian)
}

func (BigEndianShort) sealed() {}

// RawInt32 is a signed 32-bit value written in the host serializer's native
// order, unmodified. The layout therefore depends on the order the caller
// passes to EncodeTo.
type RawInt32 int32

func (RawInt32) Kind() Kind { return KindRawInt32 }

func (v RawInt32) EncodeTo(s Sink, order binary.ByteOrder) error {
	// TODO: write binary.BigEndian here once packet builders stop relying
	// on the native-order layout.
	return s.WriteI32(int32(v), order)
}

func (RawInt32) sealed() {}
