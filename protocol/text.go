package protocol

import (
	"encoding/binary"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// codePage is the single-byte code page ByteStringSequence text is mapped
// through.
var codePage = charmap.Windows1252

const replacementByte = '?'

// ByteStringSequence is text written as a sequence of single-byte code page
// values, one element per character.
type ByteStringSequence string

func (ByteStringSequence) Kind() Kind { return KindByteStringSequence }

// EncodeTo maps the text to code page bytes and hands them to the sink as a
// sequence of u8 elements. Nothing is written if any character has no
// single-byte mapping.
func (v ByteStringSequence) EncodeTo(s Sink, order binary.ByteOrder) error {
	raw, err := v.Bytes()
	if err != nil {
		return err
	}
	seq, err := s.BeginSeq(len(raw), order)
	if err != nil {
		return err
	}
	for _, b := range raw {
		if err := seq.WriteU8(b); err != nil {
			return err
		}
	}
	return seq.End()
}

// Bytes returns the code page bytes of v.
func (v ByteStringSequence) Bytes() ([]byte, error) {
	text := string(v)
	out := make([]byte, 0, len(text))
	for offset, r := range text {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(text[offset:]); size <= 1 {
				return nil, EncodingRangeError{Kind: KindByteStringSequence, Value: int64(r), Offset: offset}
			}
		}
		b, ok := codePage.EncodeRune(r)
		if !ok {
			return nil, EncodingRangeError{Kind: KindByteStringSequence, Value: int64(r), Offset: offset}
		}
		out = append(out, b)
	}
	return out, nil
}

func (ByteStringSequence) sealed() {}

// ReplaceUnrepresentable returns text as a ByteStringSequence with every
// character outside the code page, and every invalid UTF-8 byte, replaced
// by '?'.
func ReplaceUnrepresentable(text string) ByteStringSequence {
	var b strings.Builder
	b.Grow(len(text))
	for offset, r := range text {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(text[offset:]); size <= 1 {
				b.WriteByte(replacementByte)
				continue
			}
		}
		if _, ok := codePage.EncodeRune(r); !ok {
			b.WriteByte(replacementByte)
			continue
		}
		b.WriteRune(r)
	}
	return ByteStringSequence(b.String())
}

func decodeCodePage(raw []byte) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, c := range raw {
		b.WriteRune(codePage.DecodeByte(c))
	}
	return b.String()
}
