package protocol

import (
	"encoding/binary"
	"fmt"
)

// Encode writes values to s in declared order and stops at the first
// failure. The failing field index is attached to the error.
func Encode(s Sink, order binary.ByteOrder, values ...Value) error {
	if s == nil {
		return ErrNilSink
	}
	for i, v := range values {
		if v == nil {
			return fmt.Errorf("protocol: field %d: %w", i, ErrNilValue)
		}
		if err := v.EncodeTo(s, order); err != nil {
			return fmt.Errorf("protocol: field %d (%s): %w", i, v.Kind(), err)
		}
	}
	return nil
}
