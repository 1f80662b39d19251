package std140

import (
	"fmt"

	"github.com/gogpu/std140/internal/layout"
)

// ArrayMember pads a value to be an element of a std140 array.
//
// Array elements start on 16-byte boundaries, so a GLSL
//
//	float weights[8];
//
// is declared on the host as
//
//	Weights [8]std140.ArrayMember[std140.Float32]
//
// Payloads aligned to more than 16 bytes keep their own alignment.
type ArrayMember[T Value] struct {
	Value T
}

// DynamicOffsetMember pads a value so that consecutive elements start at
// offsets usable as dynamic uniform buffer offsets (multiples of 256).
//
// Instance i of a []DynamicOffsetMember[Block] encoded with AppendSlice
// starts at i * Layout().Stride().
type DynamicOffsetMember[T Value] struct {
	Value T
}

// AsArrayMember wraps v.
func AsArrayMember[T Value](v T) ArrayMember[T] { return ArrayMember[T]{Value: v} }

// AsDynamicOffsetMember wraps v.
func AsDynamicOffsetMember[T Value](v T) DynamicOffsetMember[T] {
	return DynamicOffsetMember[T]{Value: v}
}

// Layout returns the std140 alignment and size of an ArrayMember.
func (a ArrayMember[T]) Layout() Layout { return padTo(a.Value.Layout(), ArrayAlign) }

// AppendStd140 appends the std140 encoding to dst.
func (a ArrayMember[T]) AppendStd140(dst []byte) []byte {
	return appendPadded(dst, a.Value, ArrayAlign)
}

// UnmarshalStd140 decodes an ArrayMember from the start of src.
func (a *ArrayMember[T]) UnmarshalStd140(src []byte) error {
	return decodePayload(src, &a.Value, a.Layout())
}

// Layout returns the std140 alignment and size of a DynamicOffsetMember.
func (d DynamicOffsetMember[T]) Layout() Layout {
	return padTo(d.Value.Layout(), DynamicOffsetAlign)
}

// AppendStd140 appends the std140 encoding to dst.
func (d DynamicOffsetMember[T]) AppendStd140(dst []byte) []byte {
	return appendPadded(dst, d.Value, DynamicOffsetAlign)
}

// UnmarshalStd140 decodes a DynamicOffsetMember from the start of src.
func (d *DynamicOffsetMember[T]) UnmarshalStd140(src []byte) error {
	return decodePayload(src, &d.Value, d.Layout())
}

// padTo raises l to at least minAlign and rounds its size to the result.
func padTo(l Layout, minAlign int) Layout {
	align := max(l.Align, minAlign)
	return Layout{Align: align, Size: layout.RoundUp(l.Size, align)}
}

func appendPadded(dst []byte, v Value, minAlign int) []byte {
	start := len(dst)
	dst = v.AppendStd140(dst)
	return appendZeros(dst, padTo(v.Layout(), minAlign).Size-(len(dst)-start))
}

type unmarshaler interface {
	UnmarshalStd140(src []byte) error
}

func decodePayload(src []byte, payload any, l Layout) error {
	u, ok := payload.(unmarshaler)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotDecodable, payload)
	}
	if err := checkLen(src, l); err != nil {
		return err
	}
	return u.UnmarshalStd140(src)
}

// AppendSlice appends vs as a contiguous array, each element starting at
// a multiple of its Layout().Stride(). Wrap the elements in ArrayMember to
// get the std140 array stride.
func AppendSlice[T Value](dst []byte, vs []T) []byte {
	for _, v := range vs {
		start := len(dst)
		dst = v.AppendStd140(dst)
		dst = appendZeros(dst, v.Layout().Stride()-(len(dst)-start))
	}
	return dst
}
