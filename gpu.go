package std140

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/std140/internal/layout"
)

// VertexFormat returns the vertex attribute format matching an n-component
// vector (or scalar, n == 1) of kind k. Doubles have no vertex format.
func VertexFormat(k Kind, n int) (gputypes.VertexFormat, bool) {
	switch k {
	case KindFloat32:
		switch n {
		case 1:
			return gputypes.VertexFormatFloat32, true
		case 2:
			return gputypes.VertexFormatFloat32x2, true
		case 3:
			return gputypes.VertexFormatFloat32x3, true
		case 4:
			return gputypes.VertexFormatFloat32x4, true
		}
	case KindInt32:
		switch n {
		case 1:
			return gputypes.VertexFormatSint32, true
		case 2:
			return gputypes.VertexFormatSint32x2, true
		case 3:
			return gputypes.VertexFormatSint32x3, true
		case 4:
			return gputypes.VertexFormatSint32x4, true
		}
	case KindUint32:
		switch n {
		case 1:
			return gputypes.VertexFormatUint32, true
		case 2:
			return gputypes.VertexFormatUint32x2, true
		case 3:
			return gputypes.VertexFormatUint32x3, true
		case 4:
			return gputypes.VertexFormatUint32x4, true
		}
	}
	var none gputypes.VertexFormat
	return none, false
}

// VertexFormat returns the vertex attribute format for v's type.
func (Vector2[E]) VertexFormat() (gputypes.VertexFormat, bool) { return VertexFormat(KindOf[E](), 2) }

// VertexFormat returns the vertex attribute format for v's type.
func (Vector3[E]) VertexFormat() (gputypes.VertexFormat, bool) { return VertexFormat(KindOf[E](), 3) }

// VertexFormat returns the vertex attribute format for v's type.
func (Vector4[E]) VertexFormat() (gputypes.VertexFormat, bool) { return VertexFormat(KindOf[E](), 4) }

// UniformLayoutEntry returns a bind group layout entry for a uniform
// buffer holding one block of layout l, visible to vertex and fragment
// stages. Callers needing other stages overwrite Visibility.
func UniformLayoutEntry(binding uint32, l Layout) gputypes.BindGroupLayoutEntry {
	return gputypes.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
		Buffer: &gputypes.BufferBindingLayout{
			Type:           gputypes.BufferBindingTypeUniform,
			MinBindingSize: uint64(l.Size),
		},
	}
}

// DynamicOffsetAlignment returns the alignment dynamic uniform offsets
// must honour on a device with the given limits. Zero limits fall back to
// DynamicOffsetAlign, the value DynamicOffsetMember is built for.
func DynamicOffsetAlignment(lim gputypes.Limits) int {
	if a := int(lim.MinUniformBufferOffsetAlignment); a > 0 {
		return a
	}
	return DynamicOffsetAlign
}

// DynamicOffsets returns the dynamic offsets of count consecutive blocks
// of layout l in one uniform buffer on a device with the given limits.
// It returns nil when count is not positive.
func DynamicOffsets(lim gputypes.Limits, l Layout, count int) []uint32 {
	if count <= 0 {
		return nil
	}
	stride := layout.RoundUp(l.Size, max(l.Align, DynamicOffsetAlignment(lim)))
	offsets := make([]uint32, count)
	for i := range offsets {
		offsets[i] = uint32(i * stride)
	}
	return offsets
}
