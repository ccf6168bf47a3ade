package protocol

import "encoding/binary"

// DecodeSmartInt reads a SmartInt. The two byte form is only self-delimiting
// when its high byte comes first, so order must be big-endian.
func DecodeSmartInt(src Source, order binary.ByteOrder) (SmartInt, error) {
	if order != binary.BigEndian {
		return 0, ErrSmartIntOrder
	}
	lead, err := src.PeekU8()
	if err != nil {
		return 0, err
	}
	if uint16(lead) <= smartOneByteMax {
		b, err := src.ReadU8()
		if err != nil {
			return 0, err
		}
		return SmartInt(b), nil
	}
	n, err := src.ReadU16(order)
	if err != nil {
		return 0, err
	}
	return SmartInt(n - smartTwoByteTag), nil
}

// DecodeObfuscatedByte reads one byte and undoes the 128 shift.
func DecodeObfuscatedByte(src Source) (ObfuscatedByte, error) {
	b, err := src.ReadU8()
	if err != nil {
		return 0, err
	}
	return ObfuscatedByte(b - obfuscationOffset), nil
}

// DecodeBigEndianShort reads two bytes most significant first.
func DecodeBigEndianShort(src Source) (BigEndianShort, error) {
	n, err := src.ReadU16(binary.BigEndian)
	if err != nil {
		return 0, err
	}
	return BigEndianShort(n), nil
}

// DecodeRawInt32 reads four bytes in the host order.
func DecodeRawInt32(src Source, order binary.ByteOrder) (RawInt32, error) {
	n, err := src.ReadI32(order)
	if err != nil {
		return 0, err
	}
	return RawInt32(n), nil
}

const maxPrealloc = 4096

// DecodeByteStringSequence reads a sequence of code page bytes and maps them
// back to text.
func DecodeByteStringSequence(src Source, order binary.ByteOrder) (ByteStringSequence, error) {
	n, err := src.ReadSeqLen(order)
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", ErrInvalidLength
	}
	// The count is untrusted until the bytes arrive.
	raw := make([]byte, 0, min(n, maxPrealloc))
	for range n {
		b, err := src.ReadU8()
		if err != nil {
			return "", err
		}
		raw = append(raw, b)
	}
	return ByteStringSequence(decodeCodePage(raw)), nil
}
