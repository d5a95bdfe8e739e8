package hexdump

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// FromValue dumps the byte representation of a fixed-size value, such as a
// sized integer, a float, an array or a struct of those, encoded in the
// given byte order.
func FromValue(v any, order binary.ByteOrder, lineWidth int) (*Hexdump, error) {
	data, err := EncodeValue(v, order)
	if err != nil {
		return nil, err
	}
	return New(data, len(data), lineWidth)
}

// EncodeValue returns the bytes FromValue dumps.
func EncodeValue(v any, order binary.ByteOrder) ([]byte, error) {
	if order == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "nil byte order")
	}
	size := binary.Size(v)
	if size < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "value of type %T has no fixed size", v)
	}
	data, err := binary.Append(make([]byte, 0, size), order, v)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidArgument, "encoding %T: %v", v, err)
	}
	return data, nil
}
