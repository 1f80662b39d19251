package std140

import (
	"github.com/gogpu/std140/internal/layout"
)

// Writer encodes the members of a std140 block in declaration order.
//
// Each member is placed at the next offset that satisfies its alignment;
// the skipped bytes are zeroed. The block's alignment is the largest
// member alignment rounded up to 16, as for any std140 struct.
//
//	var w std140.Writer
//	w.Write(mvp)                         // mat4, offset 0
//	w.Write(position)                    // vec3, offset 64
//	w.Write(std140.Float32(intensity))   // float, offset 76
//	buf := w.Bytes()
//
// A Writer is not safe for concurrent use.
type Writer struct {
	buf      []byte
	maxAlign int
}

// NewWriter returns a Writer that appends to buf[:0], reusing its storage.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf[:0]}
}

// Write appends v at its aligned offset and returns that offset.
func (w *Writer) Write(v Value) int {
	l := v.Layout()
	off := layout.RoundUp(len(w.buf), l.Align)
	if pad := off - len(w.buf); pad > 0 {
		Logger().Debug("std140: aligned member",
			"offset", off,
			"pad", pad,
			"align", l.Align)
		w.buf = appendZeros(w.buf, pad)
	}
	w.buf = v.AppendStd140(w.buf)
	w.maxAlign = max(w.maxAlign, l.Align)
	return off
}

// Offset returns the number of bytes written so far.
func (w *Writer) Offset() int { return len(w.buf) }

// Layout returns the layout of the block written so far.
func (w *Writer) Layout() Layout {
	align := layout.RoundUp(max(w.maxAlign, 1), ArrayAlign)
	return Layout{Align: align, Size: layout.RoundUp(len(w.buf), align)}
}

// Bytes pads the block to its full size and returns the encoded bytes.
// The slice may alias the Writer's buffer until the next Write or Reset.
// Members written afterwards continue at Offset, not after the padding.
func (w *Writer) Bytes() []byte {
	return appendZeros(w.buf, w.Layout().Size-len(w.buf))
}

// Struct returns the block written so far as a Value that can be nested
// in another block or wrapped in ArrayMember or DynamicOffsetMember.
func (w *Writer) Struct() Struct {
	return Struct{layout: w.Layout(), data: append([]byte(nil), w.Bytes()...)}
}

// Reset discards everything written, keeping the buffer's storage.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
	w.maxAlign = 0
}

// Struct is an encoded std140 struct.
type Struct struct {
	layout Layout
	data   []byte
}

// Layout returns the struct's alignment and padded size.
func (s Struct) Layout() Layout { return s.layout }

// AppendStd140 appends the struct bytes padded to Layout().Size.
func (s Struct) AppendStd140(dst []byte) []byte {
	dst = append(dst, s.data...)
	return appendZeros(dst, s.layout.Size-len(s.data))
}

// UnmarshalStd140 replaces the struct's bytes with the first
// Layout().Size bytes of src.
func (s *Struct) UnmarshalStd140(src []byte) error {
	if err := checkLen(src, s.layout); err != nil {
		return err
	}
	s.data = append(s.data[:0], src[:s.layout.Size]...)
	return nil
}

// Bytes returns the encoded struct. The caller must not modify it.
func (s Struct) Bytes() []byte { return s.data }
