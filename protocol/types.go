package protocol

import "encoding/binary"

// Kind identifies one tagged primitive variant.
type Kind uint8

const (
	KindSmartInt Kind = iota + 1
	KindObfuscatedByte
	KindBigEndianShort
	KindRawInt32
	KindByteStringSequence
)

func (k Kind) String() string {
	switch k {
	case KindSmartInt:
		return "smart_int"
	case KindObfuscatedByte:
		return "obfuscated_byte"
	case KindBigEndianShort:
		return "big_endian_short"
	case KindRawInt32:
		return "raw_int32"
	case KindByteStringSequence:
		return "byte_string_sequence"
	default:
		return "unknown"
	}
}

// Value is a field codec the host serializer can encode without knowing the
// concrete wrapper type. The set of implementations is closed.
//
// order is the host serializer's native byte order. Codecs that mandate an
// order on the wire ignore it.
type Value interface {
	Kind() Kind
	EncodeTo(s Sink, order binary.ByteOrder) error
	sealed()
}

// Sink is the per-primitive write surface of the host structural serializer.
type Sink interface {
	WriteU8(v uint8) error
	WriteU16(v uint16, order binary.ByteOrder) error
	WriteI32(v int32, order binary.ByteOrder) error
	// BeginSeq announces n elements. The sink decides how the count is
	// framed on the wire.
	BeginSeq(n int, order binary.ByteOrder) (SeqSink, error)
}

// SeqSink receives the elements of one sequence opened by Sink.BeginSeq.
type SeqSink interface {
	WriteU8(v uint8) error
	End() error
}

// Source is the read surface used by the codec inverses.
type Source interface {
	PeekU8() (uint8, error)
	ReadU8() (uint8, error)
	ReadU16(order binary.ByteOrder) (uint16, error)
	ReadI32(order binary.ByteOrder) (int32, error)
	ReadSeqLen(order binary.ByteOrder) (int, error)
}
