package wire

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/danmuck/legacywire/protocol"
)

// LenPrefix is the width in bytes of a sequence count on the wire.
type LenPrefix uint8

const (
	LenPrefixU8  LenPrefix = 1
	LenPrefixU16 LenPrefix = 2
	LenPrefixU32 LenPrefix = 4
	LenPrefixU64 LenPrefix = 8
)

// DefaultMaxSeqLen bounds the sequence counts a Decoder accepts.
const DefaultMaxSeqLen = 1 << 20

// Max returns the largest count the prefix can carry.
func (p LenPrefix) Max() uint64 {
	switch p {
	case LenPrefixU8:
		return 1<<8 - 1
	case LenPrefixU16:
		return 1<<16 - 1
	case LenPrefixU32:
		return 1<<32 - 1
	case LenPrefixU64:
		return 1<<64 - 1
	default:
		return 0
	}
}

func (p LenPrefix) String() string {
	switch p {
	case LenPrefixU8:
		return "u8"
	case LenPrefixU16:
		return "u16"
	case LenPrefixU32:
		return "u32"
	case LenPrefixU64:
		return "u64"
	default:
		return fmt.Sprintf("LenPrefix(%d)", uint8(p))
	}
}

// Observer is notified after every protocol.Value the encoder writes.
type Observer interface {
	ObserveEncode(kind protocol.Kind, n int)
	ObserveFailure(kind protocol.Kind, err error)
}

// Options is the host serializer layout. The zero value of each field falls
// back to DefaultOptions.
type Options struct {
	Order     binary.ByteOrder
	LenPrefix LenPrefix
	MaxSeqLen int
	Observer  Observer
}

// DefaultOptions matches the bincode layout legacy packet definitions were
// written against: little-endian integers and a u64 sequence count.
func DefaultOptions() Options {
	return Options{
		Order:     binary.LittleEndian,
		LenPrefix: LenPrefixU64,
		MaxSeqLen: DefaultMaxSeqLen,
	}
}

func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.Order == nil {
		o.Order = def.Order
	}
	if o.LenPrefix == 0 {
		o.LenPrefix = def.LenPrefix
	}
	if o.MaxSeqLen <= 0 {
		o.MaxSeqLen = def.MaxSeqLen
	}
	return o
}

// Validate reports layout settings the encoder cannot honor.
func (o Options) Validate() error {
	if o.LenPrefix != 0 && o.LenPrefix.Max() == 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLenPrefix, uint8(o.LenPrefix))
	}
	if o.MaxSeqLen < 0 {
		return fmt.Errorf("wire: negative max sequence length %d", o.MaxSeqLen)
	}
	return nil
}

// ParseByteOrder accepts "little"/"le" and "big"/"be".
func ParseByteOrder(raw string) (binary.ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "little", "le", "little-endian":
		return binary.LittleEndian, nil
	case "big", "be", "big-endian":
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("wire: unknown byte order %q", raw)
	}
}

// ParseLenPrefix accepts "u8", "u16", "u32" and "u64".
func ParseLenPrefix(raw string) (LenPrefix, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "u8":
		return LenPrefixU8, nil
	case "u16":
		return LenPrefixU16, nil
	case "u32":
		return LenPrefixU32, nil
	case "u64":
		return LenPrefixU64, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLenPrefix, raw)
	}
}
