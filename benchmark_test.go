package std140

import "testing"

// BenchmarkMatrixAppendStd140 benchmarks encoding matrices with and without
// column padding.
func BenchmarkMatrixAppendStd140(b *testing.B) {
	cases := []struct {
		name string
		v    Value
	}{
		{"mat4", Matrix4x4FromFlat([16]float32{0: 1, 5: 1, 10: 1, 15: 1})},
		{"mat3", Matrix3x3FromFlat([9]float32{0: 1, 4: 1, 8: 1})},
		{"mat3x2", Mat3x2{}},
		{"dmat4", DMat4{}},
	}

	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			buf := make([]byte, 0, c.v.Layout().Size)
			b.SetBytes(int64(c.v.Layout().Size))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				buf = c.v.AppendStd140(buf[:0])
			}
		})
	}
}

// BenchmarkWriter benchmarks encoding a typical per-draw uniform block.
func BenchmarkWriter(b *testing.B) {
	mvp := Matrix4x4FromFlat([16]float32{0: 1, 5: 1, 10: 1, 15: 1})
	pos := Vec3{0, 1, 2}
	normal := Vec3{-2, 2, 3}
	uv := Vec2{0, 1}
	w := NewWriter(make([]byte, 0, 256))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Reset()
		w.Write(mvp)
		w.Write(pos)
		w.Write(normal)
		w.Write(uv)
		for c := int32(0); c < 3; c++ {
			w.Write(AsArrayMember(Int32(c)))
		}
		_ = w.Bytes()
	}
}
