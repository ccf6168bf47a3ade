package wire

import (
	"fmt"
	"reflect"

	"github.com/danmuck/legacywire/internal/logging"
	"github.com/danmuck/legacywire/protocol"
)

var valueType = reflect.TypeFor[protocol.Value]()

// Marshal encodes v with DefaultOptions.
func Marshal(v any) ([]byte, error) {
	return MarshalWith(v, DefaultOptions())
}

// MarshalWith encodes v field by field in declared order.
//
// protocol.Value fields use their own codec. Other fields use the host
// layout: fixed-width integers in opts.Order, bool as one byte, strings and
// slices with a count prefix, arrays without one. Nested structs recurse and
// pointers are followed. Unexported fields and fields tagged `wire:"-"` are
// skipped. On failure no bytes are returned.
func MarshalWith(v any, opts Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	logger := logging.Logger()
	logger.Debug().Type("type", v).Msg("wire.Marshal")
	enc := NewEncoder(opts)
	if err := enc.Marshal(v); err != nil {
		logger.Error().Err(err).Type("type", v).Msg("wire.Marshal failed")
		return nil, err
	}
	return enc.buf, nil
}

// Marshal appends the encoding of v to e. See MarshalWith for the layout.
func (e *Encoder) Marshal(v any) error {
	if v == nil {
		return fmt.Errorf("%w: nil value", ErrNilPointer)
	}
	mark := len(e.buf)
	if err := e.marshalValue(reflect.ValueOf(v), ""); err != nil {
		e.buf = e.buf[:mark]
		e.seq = nil
		return err
	}
	return nil
}

func (e *Encoder) marshalValue(rv reflect.Value, path string) error {
	if rv.Type().Implements(valueType) {
		if (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) && rv.IsNil() {
			return fieldErr(path, ErrNilPointer)
		}
		if !rv.CanInterface() {
			return fieldErr(path, UnsupportedTypeError{Type: rv.Type()})
		}
		return fieldErr(path, e.Encode(rv.Interface().(protocol.Value)))
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return fieldErr(path, ErrNilPointer)
		}
		return e.marshalValue(rv.Elem(), path)
	case reflect.Bool:
		return fieldErr(path, e.WriteBool(rv.Bool()))
	case reflect.Int8:
		return fieldErr(path, e.WriteI8(int8(rv.Int())))
	case reflect.Int16:
		return fieldErr(path, e.WriteI16(int16(rv.Int())))
	case reflect.Int32:
		return fieldErr(path, e.WriteI32(int32(rv.Int()), nil))
	case reflect.Int64:
		return fieldErr(path, e.WriteI64(rv.Int()))
	case reflect.Uint8:
		return fieldErr(path, e.WriteU8(uint8(rv.Uint())))
	case reflect.Uint16:
		return fieldErr(path, e.WriteU16(uint16(rv.Uint()), nil))
	case reflect.Uint32:
		return fieldErr(path, e.WriteU32(uint32(rv.Uint())))
	case reflect.Uint64:
		return fieldErr(path, e.WriteU64(rv.Uint()))
	case reflect.String:
		return fieldErr(path, e.WriteString(rv.String()))
	case reflect.Slice:
		elem := rv.Type().Elem()
		if elem.Kind() == reflect.Uint8 && !elem.Implements(valueType) {
			return fieldErr(path, e.WriteBytes(rv.Bytes()))
		}
		if err := e.writable(); err != nil {
			return fieldErr(path, err)
		}
		if err := e.writeSeqLen(rv.Len(), e.opts.Order); err != nil {
			return fieldErr(path, err)
		}
		return e.marshalElems(rv, path)
	case reflect.Array:
		return e.marshalElems(rv, path)
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() || sf.Tag.Get("wire") == "-" {
				continue
			}
			if err := e.marshalValue(rv.Field(i), joinPath(path, sf.Name)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fieldErr(path, UnsupportedTypeError{Type: rv.Type()})
	}
}

func (e *Encoder) marshalElems(rv reflect.Value, path string) error {
	for i := 0; i < rv.Len(); i++ {
		if err := e.marshalValue(rv.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func fieldErr(path string, err error) error {
	if err == nil || path == "" {
		return err
	}
	return fmt.Errorf("wire: field %s: %w", path, err)
}
