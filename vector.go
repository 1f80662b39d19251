package std140

// Vector2 is a 2-component vector, GLSL vec2 and its typed variants.
// It aligns to twice its scalar width.
type Vector2[E Scalar] [2]E

// Vector3 is a 3-component vector, GLSL vec3 and its typed variants.
// It aligns like a 4-component vector but occupies only 3 scalars, so
// a following scalar member may share its last slot.
type Vector3[E Scalar] [3]E

// Vector4 is a 4-component vector, GLSL vec4 and its typed variants.
type Vector4[E Scalar] [4]E

// Float vectors.
type (
	Vec2 = Vector2[float32]
	Vec3 = Vector3[float32]
	Vec4 = Vector4[float32]
)

// Double vectors.
type (
	DVec2 = Vector2[float64]
	DVec3 = Vector3[float64]
	DVec4 = Vector4[float64]
)

// Signed integer vectors.
type (
	IVec2 = Vector2[int32]
	IVec3 = Vector3[int32]
	IVec4 = Vector4[int32]
)

// Unsigned integer vectors.
type (
	UVec2 = Vector2[uint32]
	UVec3 = Vector3[uint32]
	UVec4 = Vector4[uint32]
)

// NewVector2 wraps a.
func NewVector2[E Scalar](a [2]E) Vector2[E] { return Vector2[E](a) }

// NewVector3 wraps a.
func NewVector3[E Scalar](a [3]E) Vector3[E] { return Vector3[E](a) }

// NewVector4 wraps a.
func NewVector4[E Scalar](a [4]E) Vector4[E] { return Vector4[E](a) }

// Array returns the components of v.
func (v Vector2[E]) Array() [2]E { return [2]E(v) }

// Array returns the components of v.
func (v Vector3[E]) Array() [3]E { return [3]E(v) }

// Array returns the components of v.
func (v Vector4[E]) Array() [4]E { return [4]E(v) }

// Layout returns the std140 alignment and size of a Vector2.
func (Vector2[E]) Layout() Layout { return vectorLayout(KindOf[E](), 2) }

// Layout returns the std140 alignment and size of a Vector3.
func (Vector3[E]) Layout() Layout { return vectorLayout(KindOf[E](), 3) }

// Layout returns the std140 alignment and size of a Vector4.
func (Vector4[E]) Layout() Layout { return vectorLayout(KindOf[E](), 4) }

// AppendStd140 appends the components of v.
func (v Vector2[E]) AppendStd140(dst []byte) []byte { return appendScalars(dst, v[:]) }

// AppendStd140 appends the components of v. No trailing padding is
// written; the fourth slot belongs to whatever member follows.
func (v Vector3[E]) AppendStd140(dst []byte) []byte { return appendScalars(dst, v[:]) }

// AppendStd140 appends the components of v.
func (v Vector4[E]) AppendStd140(dst []byte) []byte { return appendScalars(dst, v[:]) }

// UnmarshalStd140 decodes a Vector2 from the start of src.
func (v *Vector2[E]) UnmarshalStd140(src []byte) error { return decodeVector(src, v[:], v.Layout()) }

// UnmarshalStd140 decodes a Vector3 from the start of src.
func (v *Vector3[E]) UnmarshalStd140(src []byte) error { return decodeVector(src, v[:], v.Layout()) }

// UnmarshalStd140 decodes a Vector4 from the start of src.
func (v *Vector4[E]) UnmarshalStd140(src []byte) error { return decodeVector(src, v[:], v.Layout()) }

func decodeVector[E Scalar](src []byte, dst []E, l Layout) error {
	if err := checkLen(src, l); err != nil {
		return err
	}
	decodeScalars(src, dst)
	return nil
}
