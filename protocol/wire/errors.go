package wire

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrInvalidLenPrefix = errors.New("wire: invalid length prefix")
	ErrInvalidLength    = errors.New("wire: invalid length")
	ErrSeqTooLong       = errors.New("wire: sequence too long")
	ErrSeqOpen          = errors.New("wire: sequence still open")
	ErrSeqClosed        = errors.New("wire: sequence already closed")
	ErrSeqLength        = errors.New("wire: sequence element count mismatch")
	ErrNilPointer       = errors.New("wire: nil pointer")
	ErrInvalidBool      = errors.New("wire: invalid bool value")
)

// UnsupportedTypeError is returned by Marshal for Go kinds with no wire
// layout (floats, maps, channels, funcs).
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e UnsupportedTypeError) Error() string {
	return fmt.Sprintf("wire: unsupported type %s", e.Type)
}
