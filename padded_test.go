package std140

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func TestArrayMemberLayout(t *testing.T) {
	tests := []struct {
		name string
		got  Layout
		want Layout
	}{
		{"float", ArrayMember[Float32]{}.Layout(), Layout{16, 16}},
		{"double", ArrayMember[Float64]{}.Layout(), Layout{16, 16}},
		{"vec2", ArrayMember[Vec2]{}.Layout(), Layout{16, 16}},
		{"vec3", ArrayMember[Vec3]{}.Layout(), Layout{16, 16}},
		{"vec4", ArrayMember[Vec4]{}.Layout(), Layout{16, 16}},
		{"mat3x2", ArrayMember[Mat3x2]{}.Layout(), Layout{16, 32}},
		{"dvec3", ArrayMember[DVec3]{}.Layout(), Layout{32, 32}},
		{"dmat4", ArrayMember[DMat4]{}.Layout(), Layout{32, 128}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Layout() = %v, want %v", tt.got, tt.want)
			}
			if tt.got.Align < ArrayAlign || tt.got.Size%ArrayAlign != 0 {
				t.Errorf("Layout() = %v, want align >= 16 and size a multiple of 16", tt.got)
			}
		})
	}
}

func TestArrayMemberFloatScenario(t *testing.T) {
	a := AsArrayMember(Float32(1.5))
	buf := a.AppendStd140(nil)
	if len(buf) != 16 {
		t.Fatalf("AppendStd140 wrote %d bytes, want 16", len(buf))
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf)); got != 1.5 {
		t.Errorf("payload = %v, want 1.5", got)
	}
	if !bytes.Equal(buf[4:], make([]byte, 12)) {
		t.Errorf("padding = %v, want zeros", buf[4:])
	}

	var back ArrayMember[Float32]
	if err := back.UnmarshalStd140(buf); err != nil {
		t.Fatalf("UnmarshalStd140() error = %v", err)
	}
	if back != a {
		t.Errorf("round trip = %v, want %v", back, a)
	}
}

func TestDynamicOffsetMemberLayout(t *testing.T) {
	tests := []struct {
		name string
		got  Layout
		want Layout
	}{
		{"float", DynamicOffsetMember[Float32]{}.Layout(), Layout{256, 256}},
		{"mat4", DynamicOffsetMember[Mat4]{}.Layout(), Layout{256, 256}},
		{"struct384", DynamicOffsetMember[Struct]{Value: Struct{layout: Layout{32, 384}}}.Layout(), Layout{256, 512}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Layout() = %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestDynamicOffsetSlice(t *testing.T) {
	// Two mat4 uniforms per draw, one draw per 256-byte slot.
	var blocks []DynamicOffsetMember[Struct]
	for i := range 3 {
		var w Writer
		w.Write(Matrix4x4FromFlat([16]float32{0: float32(i)}))
		w.Write(Matrix4x4FromFlat([16]float32{15: float32(i)}))
		blocks = append(blocks, AsDynamicOffsetMember(w.Struct()))
	}

	buf := AppendSlice(nil, blocks)
	if len(buf) != 3*256 {
		t.Fatalf("AppendSlice wrote %d bytes, want %d", len(buf), 3*256)
	}
	for i := range 3 {
		off := i * blocks[0].Layout().Stride()
		if off%256 != 0 {
			t.Errorf("instance %d at offset %d, not a multiple of 256", i, off)
		}
		if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])); got != float32(i) {
			t.Errorf("instance %d first element = %v, want %d", i, got, i)
		}
		if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[off+124:])); got != float32(i) {
			t.Errorf("instance %d last element = %v, want %d", i, got, i)
		}
	}
}

func TestAppendSliceArrayStride(t *testing.T) {
	elems := []ArrayMember[Int32]{{1}, {2}, {3}}
	buf := AppendSlice(nil, elems)
	if len(buf) != 48 {
		t.Fatalf("AppendSlice wrote %d bytes, want 48", len(buf))
	}
	for i := range elems {
		if got := int32(binary.LittleEndian.Uint32(buf[16*i:])); got != int32(i+1) {
			t.Errorf("element %d = %d, want %d", i, got, i+1)
		}
	}
}

func TestAppendSliceVec3Stride(t *testing.T) {
	buf := AppendSlice(nil, []Vec3{{1, 2, 3}, {4, 5, 6}})
	if len(buf) != 32 {
		t.Fatalf("AppendSlice wrote %d bytes, want 32", len(buf))
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[16:])); got != 4 {
		t.Errorf("second vec3 starts with %v, want 4", got)
	}
}

type opaque struct{}

func (opaque) Layout() Layout                 { return Layout{Align: 4, Size: 4} }
func (opaque) AppendStd140(dst []byte) []byte { return append(dst, 1, 2, 3, 4) }

func TestWrapperNotDecodable(t *testing.T) {
	var a ArrayMember[opaque]
	if err := a.UnmarshalStd140(make([]byte, 16)); !errors.Is(err, ErrNotDecodable) {
		t.Errorf("UnmarshalStd140() error = %v, want ErrNotDecodable", err)
	}
}

func TestWrapperShortBuffer(t *testing.T) {
	var d DynamicOffsetMember[Mat4]
	if err := d.UnmarshalStd140(make([]byte, 64)); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("UnmarshalStd140(64 bytes) error = %v, want ErrShortBuffer", err)
	}
	if err := d.UnmarshalStd140(make([]byte, 256)); err != nil {
		t.Errorf("UnmarshalStd140(256 bytes) error = %v", err)
	}
}
