package std140

// Matrix4x2 is a matrix of 4 columns and 2 rows, GLSL mat4x2.
type Matrix4x2[E Float] [4]Vector2[E]

// NewMatrix4x2 assembles a matrix from its columns.
func NewMatrix4x2[E Float](cols [4]Vector2[E]) Matrix4x2[E] { return Matrix4x2[E](cols) }

// Matrix4x2FromFlat builds a matrix from column-major scalars.
func Matrix4x2FromFlat[E Float](flat [8]E) (m Matrix4x2[E]) {
	scatterFlat(m.column, 4, 2, flat[:])
	return m
}

// Matrix4x2FromNested builds a matrix from a [row][col] array.
func Matrix4x2FromNested[E Float](nested [2][4]E) (m Matrix4x2[E]) {
	scatterNested(m.column, 4, 2, func(r int) []E { return nested[r][:] })
	return m
}

// Columns returns the column vectors of m.
func (m Matrix4x2[E]) Columns() [4]Vector2[E] { return [4]Vector2[E](m) }

// Flat returns the elements of m in column-major order.
func (m Matrix4x2[E]) Flat() (flat [8]E) {
	gatherFlat(m.column, 4, 2, flat[:])
	return flat
}

// Nested returns the elements of m indexed [row][col].
func (m Matrix4x2[E]) Nested() (nested [2][4]E) {
	gatherNested(m.column, 4, 2, func(r int) []E { return nested[r][:] })
	return nested
}

// Layout returns the std140 alignment and size of a Matrix4x2.
func (m Matrix4x2[E]) Layout() Layout { return fromInfo(matrixInfo[E](4, 2)) }

// AppendStd140 appends the std140 encoding to dst.
func (m Matrix4x2[E]) AppendStd140(dst []byte) []byte {
	return appendMatrix(dst, m.column, 4, 2)
}

// UnmarshalStd140 decodes a Matrix4x2 from the start of src.
func (m *Matrix4x2[E]) UnmarshalStd140(src []byte) error {
	return decodeMatrix(src, m.column, 4, 2)
}

func (m *Matrix4x2[E]) column(c int) []E { return m[c][:] }

// Matrix4x3 is a matrix of 4 columns and 3 rows, GLSL mat4x3.
type Matrix4x3[E Float] [4]Vector3[E]

// NewMatrix4x3 assembles a matrix from its columns.
func NewMatrix4x3[E Float](cols [4]Vector3[E]) Matrix4x3[E] { return Matrix4x3[E](cols) }

// Matrix4x3FromFlat builds a matrix from column-major scalars.
func Matrix4x3FromFlat[E Float](flat [12]E) (m Matrix4x3[E]) {
	scatterFlat(m.column, 4, 3, flat[:])
	return m
}

// Matrix4x3FromNested builds a matrix from a [row][col] array.
func Matrix4x3FromNested[E Float](nested [3][4]E) (m Matrix4x3[E]) {
	scatterNested(m.column, 4, 3, func(r int) []E { return nested[r][:] })
	return m
}

// Columns returns the column vectors of m.
func (m Matrix4x3[E]) Columns() [4]Vector3[E] { return [4]Vector3[E](m) }

// Flat returns the elements of m in column-major order.
func (m Matrix4x3[E]) Flat() (flat [12]E) {
	gatherFlat(m.column, 4, 3, flat[:])
	return flat
}

// Nested returns the elements of m indexed [row][col].
func (m Matrix4x3[E]) Nested() (nested [3][4]E) {
	gatherNested(m.column, 4, 3, func(r int) []E { return nested[r][:] })
	return nested
}

// Layout returns the std140 alignment and size of a Matrix4x3.
func (m Matrix4x3[E]) Layout() Layout { return fromInfo(matrixInfo[E](4, 3)) }

// AppendStd140 appends the std140 encoding to dst.
func (m Matrix4x3[E]) AppendStd140(dst []byte) []byte {
	return appendMatrix(dst, m.column, 4, 3)
}

// UnmarshalStd140 decodes a Matrix4x3 from the start of src.
func (m *Matrix4x3[E]) UnmarshalStd140(src []byte) error {
	return decodeMatrix(src, m.column, 4, 3)
}

func (m *Matrix4x3[E]) column(c int) []E { return m[c][:] }

// Matrix4x4 is a matrix of 4 columns and 4 rows, GLSL mat4.
type Matrix4x4[E Float] [4]Vector4[E]

// NewMatrix4x4 assembles a matrix from its columns.
func NewMatrix4x4[E Float](cols [4]Vector4[E]) Matrix4x4[E] { return Matrix4x4[E](cols) }

// Matrix4x4FromFlat builds a matrix from column-major scalars.
func Matrix4x4FromFlat[E Float](flat [16]E) (m Matrix4x4[E]) {
	scatterFlat(m.column, 4, 4, flat[:])
	return m
}

// Matrix4x4FromNested builds a matrix from a [row][col] array.
func Matrix4x4FromNested[E Float](nested [4][4]E) (m Matrix4x4[E]) {
	scatterNested(m.column, 4, 4, func(r int) []E { return nested[r][:] })
	return m
}

// Columns returns the column vectors of m.
func (m Matrix4x4[E]) Columns() [4]Vector4[E] { return [4]Vector4[E](m) }

// Flat returns the elements of m in column-major order.
func (m Matrix4x4[E]) Flat() (flat [16]E) {
	gatherFlat(m.column, 4, 4, flat[:])
	return flat
}

// Nested returns the elements of m indexed [row][col].
func (m Matrix4x4[E]) Nested() (nested [4][4]E) {
	gatherNested(m.column, 4, 4, func(r int) []E { return nested[r][:] })
	return nested
}

// Layout returns the std140 alignment and size of a Matrix4x4.
func (m Matrix4x4[E]) Layout() Layout { return fromInfo(matrixInfo[E](4, 4)) }

// AppendStd140 appends the std140 encoding to dst.
func (m Matrix4x4[E]) AppendStd140(dst []byte) []byte {
	return appendMatrix(dst, m.column, 4, 4)
}

// UnmarshalStd140 decodes a Matrix4x4 from the start of src.
func (m *Matrix4x4[E]) UnmarshalStd140(src []byte) error {
	return decodeMatrix(src, m.column, 4, 4)
}

func (m *Matrix4x4[E]) column(c int) []E { return m[c][:] }

// Float matrices.
type (
	Mat4x2 = Matrix4x2[float32]
	Mat4x3 = Matrix4x3[float32]
	Mat4x4 = Matrix4x4[float32]
	Mat4   = Mat4x4
)

// Double matrices.
type (
	DMat4x2 = Matrix4x2[float64]
	DMat4x3 = Matrix4x3[float64]
	DMat4x4 = Matrix4x4[float64]
	DMat4   = DMat4x4
)
