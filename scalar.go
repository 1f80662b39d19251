package std140

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/std140/internal/layout"
)

// Scalar is the set of element types a std140 aggregate can hold.
type Scalar interface {
	float32 | float64 | int32 | uint32
}

// Float is the set of element types a std140 matrix can hold.
type Float interface {
	float32 | float64
}

// Kind identifies a scalar element type.
type Kind uint8

// Scalar kinds.
const (
	KindFloat32 Kind = iota
	KindFloat64
	KindInt32
	KindUint32
)

// Size returns the byte width of the scalar.
func (k Kind) Size() int {
	if k == KindFloat64 {
		return layout.Width64
	}
	return layout.Width32
}

// String returns the GLSL name of the scalar type.
func (k Kind) String() string {
	switch k {
	case KindFloat32:
		return "float"
	case KindFloat64:
		return "double"
	case KindInt32:
		return "int"
	case KindUint32:
		return "uint"
	default:
		return "unknown"
	}
}

// prefix returns the GLSL vector/matrix type prefix for the kind.
func (k Kind) prefix() string {
	switch k {
	case KindFloat64:
		return "d"
	case KindInt32:
		return "i"
	case KindUint32:
		return "u"
	default:
		return ""
	}
}

func (k Kind) valid() bool { return k <= KindUint32 }

// KindOf returns the Kind of the scalar type E.
func KindOf[E Scalar]() Kind {
	var zero E
	switch any(zero).(type) {
	case float64:
		return KindFloat64
	case int32:
		return KindInt32
	case uint32:
		return KindUint32
	default:
		return KindFloat32
	}
}

// appendScalars appends the little-endian encoding of s to dst.
func appendScalars[E Scalar](dst []byte, s []E) []byte {
	le := binary.LittleEndian
	for _, x := range s {
		switch x := any(x).(type) {
		case float32:
			dst = le.AppendUint32(dst, math.Float32bits(x))
		case float64:
			dst = le.AppendUint64(dst, math.Float64bits(x))
		case int32:
			dst = le.AppendUint32(dst, uint32(x))
		case uint32:
			dst = le.AppendUint32(dst, x)
		}
	}
	return dst
}

// decodeScalars fills dst from the little-endian scalars at the start of src.
// The caller guarantees src holds len(dst) scalars.
func decodeScalars[E Scalar](src []byte, dst []E) {
	le := binary.LittleEndian
	var zero E
	switch any(zero).(type) {
	case float32:
		for i := range dst {
			dst[i] = E(math.Float32frombits(le.Uint32(src[i*4:])))
		}
	case float64:
		for i := range dst {
			dst[i] = E(math.Float64frombits(le.Uint64(src[i*8:])))
		}
	case int32:
		for i := range dst {
			dst[i] = E(int32(le.Uint32(src[i*4:])))
		}
	case uint32:
		for i := range dst {
			dst[i] = E(le.Uint32(src[i*4:]))
		}
	}
}

// appendZeros appends n zero bytes to dst.
func appendZeros(dst []byte, n int) []byte {
	for ; n > 0; n-- {
		dst = append(dst, 0)
	}
	return dst
}

// Float32 is a single-precision block member (GLSL float).
type Float32 float32

// Float64 is a double-precision block member (GLSL double).
type Float64 float64

// Int32 is a signed integer block member (GLSL int).
type Int32 int32

// Uint32 is an unsigned integer block member (GLSL uint).
type Uint32 uint32

// Layout returns the std140 alignment and size of a Float32.
func (Float32) Layout() Layout { return vectorLayout(KindFloat32, 1) }

// Layout returns the std140 alignment and size of a Float64.
func (Float64) Layout() Layout { return vectorLayout(KindFloat64, 1) }

// Layout returns the std140 alignment and size of an Int32.
func (Int32) Layout() Layout { return vectorLayout(KindInt32, 1) }

// Layout returns the std140 alignment and size of a Uint32.
func (Uint32) Layout() Layout { return vectorLayout(KindUint32, 1) }

// AppendStd140 appends the std140 encoding to dst.
func (f Float32) AppendStd140(dst []byte) []byte {
	return appendScalars(dst, []float32{float32(f)})
}

// AppendStd140 appends the std140 encoding to dst.
func (f Float64) AppendStd140(dst []byte) []byte {
	return appendScalars(dst, []float64{float64(f)})
}

// AppendStd140 appends the std140 encoding to dst.
func (i Int32) AppendStd140(dst []byte) []byte {
	return appendScalars(dst, []int32{int32(i)})
}

// AppendStd140 appends the std140 encoding to dst.
func (u Uint32) AppendStd140(dst []byte) []byte {
	return appendScalars(dst, []uint32{uint32(u)})
}

// UnmarshalStd140 decodes a Float32 from the start of src.
func (f *Float32) UnmarshalStd140(src []byte) error {
	return decodeScalar(src, (*float32)(f))
}

// UnmarshalStd140 decodes a Float64 from the start of src.
func (f *Float64) UnmarshalStd140(src []byte) error {
	return decodeScalar(src, (*float64)(f))
}

// UnmarshalStd140 decodes an Int32 from the start of src.
func (i *Int32) UnmarshalStd140(src []byte) error {
	return decodeScalar(src, (*int32)(i))
}

// UnmarshalStd140 decodes a Uint32 from the start of src.
func (u *Uint32) UnmarshalStd140(src []byte) error {
	return decodeScalar(src, (*uint32)(u))
}

func decodeScalar[E Scalar](src []byte, dst *E) error {
	l := vectorLayout(KindOf[E](), 1)
	if err := checkLen(src, l); err != nil {
		return err
	}
	var v [1]E
	decodeScalars(src, v[:])
	*dst = v[0]
	return nil
}
