package wire

import (
	"bytes"
	"encoding/binary"

	"github.com/danmuck/legacywire/protocol"
)

var _ protocol.Sink = (*Encoder)(nil)

// Encoder is the host structural serializer. It owns an append-only buffer
// and implements protocol.Sink. An Encoder is not safe for concurrent use.
type Encoder struct {
	opts Options
	buf  []byte
	seq  *seqWriter
}

// NewEncoder returns an encoder using opts. Zero option fields take their
// DefaultOptions value.
func NewEncoder(opts Options) *Encoder {
	return &Encoder{opts: opts.normalized()}
}

// Options returns the effective layout of e.
func (e *Encoder) Options() Options { return e.opts }

// Bytes returns a copy of everything written so far.
func (e *Encoder) Bytes() []byte { return bytes.Clone(e.buf) }

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int { return len(e.buf) }

// Reset discards the buffer, keeping its capacity.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
	e.seq = nil
}

// Encode writes one codec value in the encoder's native order. A failed
// value leaves no bytes behind.
func (e *Encoder) Encode(v protocol.Value) error {
	if v == nil {
		return protocol.ErrNilValue
	}
	mark := len(e.buf)
	err := v.EncodeTo(e, e.opts.Order)
	if err == nil && e.seq != nil {
		err = ErrSeqOpen
	}
	if err != nil {
		e.buf = e.buf[:mark]
		e.seq = nil
		if e.opts.Observer != nil {
			e.opts.Observer.ObserveFailure(v.Kind(), err)
		}
		return err
	}
	if e.opts.Observer != nil {
		e.opts.Observer.ObserveEncode(v.Kind(), len(e.buf)-mark)
	}
	return nil
}

func (e *Encoder) order(order binary.ByteOrder) binary.ByteOrder {
	if order == nil {
		return e.opts.Order
	}
	return order
}

func (e *Encoder) writable() error {
	if e.seq != nil {
		return ErrSeqOpen
	}
	return nil
}

// WriteU8 appends one byte.
func (e *Encoder) WriteU8(v uint8) error {
	if err := e.writable(); err != nil {
		return err
	}
	e.buf = append(e.buf, v)
	return nil
}

// WriteU16 appends v in order; a nil order means the native order.
func (e *Encoder) WriteU16(v uint16, order binary.ByteOrder) error {
	if err := e.writable(); err != nil {
		return err
	}
	var tmp [2]byte
	e.order(order).PutUint16(tmp[:], v)
	e.buf = append(e.buf, tmp[:]...)
	return nil
}

// WriteI32 appends v in order; a nil order means the native order.
func (e *Encoder) WriteI32(v int32, order binary.ByteOrder) error {
	if err := e.writable(); err != nil {
		return err
	}
	var tmp [4]byte
	e.order(order).PutUint32(tmp[:], uint32(v))
	e.buf = append(e.buf, tmp[:]...)
	return nil
}

// BeginSeq writes the count prefix for n elements and returns the element
// writer. No other write is accepted until the sequence is ended.
func (e *Encoder) BeginSeq(n int, order binary.ByteOrder) (protocol.SeqSink, error) {
	if err := e.writable(); err != nil {
		return nil, err
	}
	if err := e.writeSeqLen(n, e.order(order)); err != nil {
		return nil, err
	}
	e.seq = &seqWriter{enc: e, want: n}
	return e.seq, nil
}

func (e *Encoder) writeSeqLen(n int, order binary.ByteOrder) error {
	if n < 0 {
		return ErrInvalidLength
	}
	limit := e.opts.LenPrefix.Max()
	if limit == 0 {
		return ErrInvalidLenPrefix
	}
	// MaxSeqLen only bounds decoding; the prefix width is the encode limit.
	if uint64(n) > limit {
		return ErrSeqTooLong
	}
	var tmp [8]byte
	switch e.opts.LenPrefix {
	case LenPrefixU8:
		tmp[0] = uint8(n)
	case LenPrefixU16:
		order.PutUint16(tmp[:2], uint16(n))
	case LenPrefixU32:
		order.PutUint32(tmp[:4], uint32(n))
	case LenPrefixU64:
		order.PutUint64(tmp[:8], uint64(n))
	default:
		return ErrInvalidLenPrefix
	}
	e.buf = append(e.buf, tmp[:e.opts.LenPrefix]...)
	return nil
}

type seqWriter struct {
	enc  *Encoder
	want int
	got  int
	done bool
}

func (s *seqWriter) WriteU8(v uint8) error {
	if s.done {
		return ErrSeqClosed
	}
	if s.got == s.want {
		return ErrSeqLength
	}
	s.enc.buf = append(s.enc.buf, v)
	s.got++
	return nil
}

func (s *seqWriter) End() error {
	if s.done {
		return ErrSeqClosed
	}
	if s.got != s.want {
		return ErrSeqLength
	}
	s.done = true
	s.enc.seq = nil
	return nil
}

// Native host layouts for field shapes that have no codec of their own.
// They always use the encoder's native order.

func (e *Encoder) WriteI8(v int8) error { return e.WriteU8(uint8(v)) }

func (e *Encoder) WriteBool(v bool) error {
	if v {
		return e.WriteU8(1)
	}
	return e.WriteU8(0)
}

func (e *Encoder) WriteI16(v int16) error { return e.WriteU16(uint16(v), nil) }

func (e *Encoder) WriteU32(v uint32) error { return e.WriteI32(int32(v), nil) }

func (e *Encoder) WriteU64(v uint64) error {
	if err := e.writable(); err != nil {
		return err
	}
	var tmp [8]byte
	e.opts.Order.PutUint64(tmp[:], v)
	e.buf = append(e.buf, tmp[:]...)
	return nil
}

func (e *Encoder) WriteI64(v int64) error { return e.WriteU64(uint64(v)) }

// WriteBytes writes a count prefix followed by b.
func (e *Encoder) WriteBytes(b []byte) error {
	if err := e.writable(); err != nil {
		return err
	}
	if err := e.writeSeqLen(len(b), e.opts.Order); err != nil {
		return err
	}
	e.buf = append(e.buf, b...)
	return nil
}

// WriteString writes s as prefixed UTF-8 bytes. Use
// protocol.ByteStringSequence for code page text.
func (e *Encoder) WriteString(s string) error { return e.WriteBytes([]byte(s)) }
