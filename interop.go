package std140

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// Conversions to and from the vector and matrix types of
// golang.org/x/image/math/f32 and f64. Those matrices are row-major
// (m[C*r + c] is row r, column c); the conversions gather them into
// column vectors and back.

// Vec2FromF32 converts an x/image float32 vector to a Vec2.
func Vec2FromF32(v f32.Vec2) Vec2 { return Vec2(v) }

// Vec3FromF32 converts an x/image float32 vector to a Vec3.
func Vec3FromF32(v f32.Vec3) Vec3 { return Vec3(v) }

// Vec4FromF32 converts an x/image float32 vector to a Vec4.
func Vec4FromF32(v f32.Vec4) Vec4 { return Vec4(v) }

// F32 converts v to an x/image float32 vector.
func (v Vector2[E]) F32() f32.Vec2 { return f32.Vec2{float32(v[0]), float32(v[1])} }

// F32 converts v to an x/image float32 vector.
func (v Vector3[E]) F32() f32.Vec3 {
	return f32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

// F32 converts v to an x/image float32 vector.
func (v Vector4[E]) F32() f32.Vec4 {
	return f32.Vec4{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}

// DVec2FromF64 converts an x/image float64 vector to a DVec2.
func DVec2FromF64(v f64.Vec2) DVec2 { return DVec2(v) }

// DVec3FromF64 converts an x/image float64 vector to a DVec3.
func DVec3FromF64(v f64.Vec3) DVec3 { return DVec3(v) }

// DVec4FromF64 converts an x/image float64 vector to a DVec4.
func DVec4FromF64(v f64.Vec4) DVec4 { return DVec4(v) }

// F64 converts v to an x/image float64 vector.
func (v Vector2[E]) F64() f64.Vec2 { return f64.Vec2{float64(v[0]), float64(v[1])} }

// F64 converts v to an x/image float64 vector.
func (v Vector3[E]) F64() f64.Vec3 {
	return f64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

// F64 converts v to an x/image float64 vector.
func (v Vector4[E]) F64() f64.Vec4 {
	return f64.Vec4{float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3])}
}

// Mat3FromF32 converts a row-major f32.Mat3.
func Mat3FromF32(m f32.Mat3) Mat3 { return mat3FromRowMajor(m) }

// Mat4FromF32 converts a row-major f32.Mat4.
func Mat4FromF32(m f32.Mat4) Mat4 { return mat4FromRowMajor(m) }

// Mat3x2FromAff3 converts an affine transform. The implicit [0 0 1]
// bottom row is dropped, leaving 3 columns of 2 rows.
func Mat3x2FromAff3(a f32.Aff3) Mat3x2 { return mat3x2FromRowMajor(a) }

// DMat3FromF64 converts a row-major f64.Mat3.
func DMat3FromF64(m f64.Mat3) DMat3 { return mat3FromRowMajor(m) }

// DMat4FromF64 converts a row-major f64.Mat4.
func DMat4FromF64(m f64.Mat4) DMat4 { return mat4FromRowMajor(m) }

// DMat3x2FromAff3 converts an affine transform, dropping the implicit
// bottom row.
func DMat3x2FromAff3(a f64.Aff3) DMat3x2 { return mat3x2FromRowMajor(a) }

// F32Mat3 returns m as a row-major f32.Mat3.
func F32Mat3(m Mat3) f32.Mat3 { return mat3ToRowMajor[float32, f32.Mat3](m.Nested()) }

// F32Mat4 returns m as a row-major f32.Mat4.
func F32Mat4(m Mat4) f32.Mat4 { return mat4ToRowMajor[float32, f32.Mat4](m.Nested()) }

// F32Aff3 returns m as an affine transform.
func F32Aff3(m Mat3x2) f32.Aff3 { return mat3x2ToRowMajor[float32, f32.Aff3](m.Nested()) }

// F64Mat3 returns m as a row-major f64.Mat3.
func F64Mat3(m DMat3) f64.Mat3 { return mat3ToRowMajor[float64, f64.Mat3](m.Nested()) }

// F64Mat4 returns m as a row-major f64.Mat4.
func F64Mat4(m DMat4) f64.Mat4 { return mat4ToRowMajor[float64, f64.Mat4](m.Nested()) }

// F64Aff3 returns m as an affine transform.
func F64Aff3(m DMat3x2) f64.Aff3 { return mat3x2ToRowMajor[float64, f64.Aff3](m.Nested()) }

func mat3FromRowMajor[E Float, M ~[9]E](m M) Matrix3x3[E] {
	var n [3][3]E
	for r := range n {
		copy(n[r][:], m[3*r:3*r+3])
	}
	return Matrix3x3FromNested(n)
}

func mat4FromRowMajor[E Float, M ~[16]E](m M) Matrix4x4[E] {
	var n [4][4]E
	for r := range n {
		copy(n[r][:], m[4*r:4*r+4])
	}
	return Matrix4x4FromNested(n)
}

func mat3x2FromRowMajor[E Float, M ~[6]E](m M) Matrix3x2[E] {
	var n [2][3]E
	for r := range n {
		copy(n[r][:], m[3*r:3*r+3])
	}
	return Matrix3x2FromNested(n)
}

func mat3ToRowMajor[E Float, M ~[9]E](n [3][3]E) (m M) {
	for r := range n {
		copy(m[3*r:3*r+3], n[r][:])
	}
	return m
}

func mat4ToRowMajor[E Float, M ~[16]E](n [4][4]E) (m M) {
	for r := range n {
		copy(m[4*r:4*r+4], n[r][:])
	}
	return m
}

func mat3x2ToRowMajor[E Float, M ~[6]E](n [2][3]E) (m M) {
	for r := range n {
		copy(m[3*r:3*r+3], n[r][:])
	}
	return m
}
