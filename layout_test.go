package std140

import (
	"errors"
	"testing"
)

func TestVectorLayout(t *testing.T) {
	tests := []struct {
		kind  Kind
		n     int
		align int
		size  int
	}{
		{KindFloat32, 1, 4, 4},
		{KindFloat32, 2, 8, 8},
		{KindFloat32, 3, 16, 12},
		{KindFloat32, 4, 16, 16},
		{KindFloat64, 2, 16, 16},
		{KindFloat64, 3, 32, 24},
		{KindFloat64, 4, 32, 32},
		{KindInt32, 3, 16, 12},
		{KindUint32, 2, 8, 8},
	}
	for _, tt := range tests {
		t.Run(TypeName(tt.kind, tt.n), func(t *testing.T) {
			l, err := VectorLayout(tt.kind, tt.n)
			if err != nil {
				t.Fatalf("VectorLayout() error = %v", err)
			}
			if l.Align != tt.align || l.Size != tt.size {
				t.Errorf("VectorLayout() = %v, want align=%d size=%d", l, tt.align, tt.size)
			}
		})
	}
}

func TestVectorLayoutUnsupported(t *testing.T) {
	for _, n := range []int{0, 5} {
		if _, err := VectorLayout(KindFloat32, n); !errors.Is(err, ErrUnsupportedShape) {
			t.Errorf("VectorLayout(float, %d) error = %v, want ErrUnsupportedShape", n, err)
		}
	}
	if _, err := VectorLayout(Kind(9), 2); !errors.Is(err, ErrUnsupportedShape) {
		t.Errorf("VectorLayout(Kind(9), 2) error = %v, want ErrUnsupportedShape", err)
	}
}

func TestMatrixLayoutUnsupported(t *testing.T) {
	if _, err := MatrixLayout(KindInt32, 2, 2); !errors.Is(err, ErrUnsupportedShape) {
		t.Errorf("MatrixLayout(int, 2, 2) error = %v, want ErrUnsupportedShape", err)
	}
	if _, err := MatrixLayout(KindFloat32, 1, 4); !errors.Is(err, ErrUnsupportedShape) {
		t.Errorf("MatrixLayout(float, 1, 4) error = %v, want ErrUnsupportedShape", err)
	}
}

func TestTypeLayout(t *testing.T) {
	tests := []struct {
		name string
		want Layout
	}{
		{"float", Layout{4, 4}},
		{"double", Layout{8, 8}},
		{"int", Layout{4, 4}},
		{"uint", Layout{4, 4}},
		{"vec2", Layout{8, 8}},
		{"vec3", Layout{16, 12}},
		{"ivec4", Layout{16, 16}},
		{"uvec3", Layout{16, 12}},
		{"dvec3", Layout{32, 24}},
		{"mat2", Layout{8, 16}},
		{"mat3", Layout{16, 48}},
		{"mat4", Layout{16, 64}},
		{"mat2x3", Layout{16, 32}},
		{"mat3x2", Layout{8, 24}},
		{"mat4x3", Layout{16, 64}},
		{"dmat4", Layout{32, 128}},
		{"dmat2x4", Layout{32, 64}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TypeLayout(tt.name)
			if err != nil {
				t.Fatalf("TypeLayout(%q) error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("TypeLayout(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestTypeLayoutUnknown(t *testing.T) {
	for _, name := range []string{"", "bool", "vec5", "vec1", "bvec2", "imat2", "mat5", "mat2x", "mat2x9", "xvec3", "float3", "vec+2", "vec02", "mat02", "mat+3x+3", "dmat2x03", "mat-2"} {
		if _, err := TypeLayout(name); !errors.Is(err, ErrUnknownType) {
			t.Errorf("TypeLayout(%q) error = %v, want ErrUnknownType", name, err)
		}
	}
}

func TestTypeNames(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{TypeName(KindFloat32, 1), "float"},
		{TypeName(KindUint32, 3), "uvec3"},
		{TypeName(KindFloat64, 4), "dvec4"},
		{MatrixTypeName(KindFloat32, 4, 4), "mat4"},
		{MatrixTypeName(KindFloat32, 2, 3), "mat2x3"},
		{MatrixTypeName(KindFloat64, 3, 2), "dmat3x2"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("type name = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestStride(t *testing.T) {
	if got := (Layout{Align: 16, Size: 12}).Stride(); got != 16 {
		t.Errorf("vec3 Stride() = %d, want 16", got)
	}
	if got := (Layout{Align: 8, Size: 8}).Stride(); got != 8 {
		t.Errorf("vec2 Stride() = %d, want 8", got)
	}
}

func TestArrayLayout(t *testing.T) {
	tests := []struct {
		name string
		elem Layout
		n    int
		want Layout
	}{
		{"float[3]", Layout{4, 4}, 3, Layout{16, 48}},
		{"vec2[2]", Layout{8, 8}, 2, Layout{16, 32}},
		{"vec4[2]", Layout{16, 16}, 2, Layout{16, 32}},
		{"dvec3[2]", Layout{32, 24}, 2, Layout{32, 64}},
		{"mat3x2[2]", Layout{8, 24}, 2, Layout{16, 64}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ArrayLayout(tt.elem, tt.n); got != tt.want {
				t.Errorf("ArrayLayout() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStructLayout(t *testing.T) {
	// mat4 mvp; vec3 position; vec3 normal; vec2 uv; int constants[3];
	l, offsets := StructLayout(
		Layout{16, 64},
		Layout{16, 12},
		Layout{16, 12},
		Layout{8, 8},
		ArrayLayout(Layout{4, 4}, 3),
	)
	wantOffsets := []int{0, 64, 80, 96, 112}
	for i, want := range wantOffsets {
		if offsets[i] != want {
			t.Errorf("offset[%d] = %d, want %d", i, offsets[i], want)
		}
	}
	if want := (Layout{Align: 16, Size: 160}); l != want {
		t.Errorf("StructLayout() = %v, want %v", l, want)
	}
}

func TestStructLayoutPacksScalarAfterVec3(t *testing.T) {
	l, offsets := StructLayout(Layout{16, 12}, Layout{4, 4})
	if offsets[1] != 12 {
		t.Errorf("float after vec3 at offset %d, want 12", offsets[1])
	}
	if l.Size != 16 || l.Align != 16 {
		t.Errorf("StructLayout() = %v, want align=16 size=16", l)
	}
}

func TestStructLayoutEmpty(t *testing.T) {
	l, offsets := StructLayout()
	if len(offsets) != 0 || l.Size != 0 || l.Align != 16 {
		t.Errorf("StructLayout() = %v %v, want empty struct aligned to 16", l, offsets)
	}
}
