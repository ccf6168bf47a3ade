package wire

import (
	"encoding/binary"

	"github.com/danmuck/legacywire/protocol"
)

var _ protocol.Source = (*Decoder)(nil)

// Decoder reads the host layout back from a byte slice and implements
// protocol.Source. It does not copy b.
type Decoder struct {
	opts Options
	buf  []byte
	off  int
}

func NewDecoder(b []byte, opts Options) *Decoder {
	return &Decoder{opts: opts.normalized(), buf: b}
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int { return len(d.buf) - d.off }

func (d *Decoder) order(order binary.ByteOrder) binary.ByteOrder {
	if order == nil {
		return d.opts.Order
	}
	return order
}

func (d *Decoder) next(n int) ([]byte, error) {
	if n < 0 || d.Remaining() < n {
		return nil, protocol.ErrTruncated
	}
	b := d.buf[d.off : d.off+n]
	d.off += n
	return b, nil
}

func (d *Decoder) PeekU8() (uint8, error) {
	if d.Remaining() < 1 {
		return 0, protocol.ErrTruncated
	}
	return d.buf[d.off], nil
}

func (d *Decoder) ReadU8() (uint8, error) {
	b, err := d.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *Decoder) ReadU16(order binary.ByteOrder) (uint16, error) {
	b, err := d.next(2)
	if err != nil {
		return 0, err
	}
	return d.order(order).Uint16(b), nil
}

func (d *Decoder) ReadI32(order binary.ByteOrder) (int32, error) {
	b, err := d.next(4)
	if err != nil {
		return 0, err
	}
	return int32(d.order(order).Uint32(b)), nil
}

// ReadSeqLen reads a count prefix and checks it against MaxSeqLen.
func (d *Decoder) ReadSeqLen(order binary.ByteOrder) (int, error) {
	width := int(d.opts.LenPrefix)
	if d.opts.LenPrefix.Max() == 0 {
		return 0, ErrInvalidLenPrefix
	}
	b, err := d.next(width)
	if err != nil {
		return 0, err
	}
	order = d.order(order)
	var n uint64
	switch d.opts.LenPrefix {
	case LenPrefixU8:
		n = uint64(b[0])
	case LenPrefixU16:
		n = uint64(order.Uint16(b))
	case LenPrefixU32:
		n = uint64(order.Uint32(b))
	default:
		n = order.Uint64(b)
	}
	if n > uint64(d.opts.MaxSeqLen) {
		return 0, ErrSeqTooLong
	}
	return int(n), nil
}

func (d *Decoder) ReadI8() (int8, error) {
	v, err := d.ReadU8()
	return int8(v), err
}

func (d *Decoder) ReadBool() (bool, error) {
	v, err := d.ReadU8()
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrInvalidBool
	}
}

func (d *Decoder) ReadI16() (int16, error) {
	v, err := d.ReadU16(nil)
	return int16(v), err
}

func (d *Decoder) ReadU32() (uint32, error) {
	v, err := d.ReadI32(nil)
	return uint32(v), err
}

func (d *Decoder) ReadU64() (uint64, error) {
	b, err := d.next(8)
	if err != nil {
		return 0, err
	}
	return d.opts.Order.Uint64(b), nil
}

func (d *Decoder) ReadI64() (int64, error) {
	v, err := d.ReadU64()
	return int64(v), err
}

// ReadBytes reads a count prefix and that many bytes, copied.
func (d *Decoder) ReadBytes() ([]byte, error) {
	n, err := d.ReadSeqLen(nil)
	if err != nil {
		return nil, err
	}
	b, err := d.next(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

func (d *Decoder) ReadString() (string, error) {
	b, err := d.ReadBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}
