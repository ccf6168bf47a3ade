package protocol

import (
	"errors"
	"fmt"
)

var (
	ErrEncodingRange = errors.New("protocol: value out of encodable range")
	ErrSmartIntOrder = errors.New("protocol: smart int decoding requires big-endian order")
	ErrTruncated     = errors.New("protocol: truncated data")
	ErrInvalidLength = errors.New("protocol: invalid sequence length")
	ErrNilSink       = errors.New("protocol: nil sink")
	ErrNilValue      = errors.New("protocol: nil value")
)

// EncodingRangeError reports a wrapped value outside its codec's domain.
// For ByteStringSequence, Value is the offending code point and Offset its
// byte offset in the text.
type EncodingRangeError struct {
	Kind   Kind
	Value  int64
	Offset int
}

func (e EncodingRangeError) Error() string {
	if e.Kind == KindByteStringSequence {
		return fmt.Sprintf("protocol: %s code point %U at offset %d not representable", e.Kind, rune(e.Value), e.Offset)
	}
	return fmt.Sprintf("protocol: %s value %d out of range", e.Kind, e.Value)
}

func (e EncodingRangeError) Is(target error) bool {
	return target == ErrEncodingRange
}
