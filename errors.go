package std140

import (
	"errors"
	"fmt"
)

var (
	// ErrShortBuffer is returned when a byte slice is too small to hold
	// the std140 encoding of a value.
	ErrShortBuffer = errors.New("std140: buffer too short")

	// ErrUnknownType is returned when a GLSL type name is not recognised.
	ErrUnknownType = errors.New("std140: unknown type")

	// ErrUnsupportedShape is returned for vector or matrix dimensions
	// outside 2..4, or element kinds a matrix cannot hold.
	ErrUnsupportedShape = errors.New("std140: unsupported shape")

	// ErrNotDecodable is returned when a wrapper's payload has no
	// UnmarshalStd140 method.
	ErrNotDecodable = errors.New("std140: payload cannot be decoded")
)

func checkLen(src []byte, l Layout) error {
	if len(src) < l.Size {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrShortBuffer, len(src), l.Size)
	}
	return nil
}
