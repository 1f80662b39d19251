package std140

// Matrix3x2 is a matrix of 3 columns and 2 rows, GLSL mat3x2.
type Matrix3x2[E Float] [3]Vector2[E]

// NewMatrix3x2 assembles a matrix from its columns.
func NewMatrix3x2[E Float](cols [3]Vector2[E]) Matrix3x2[E] { return Matrix3x2[E](cols) }

// Matrix3x2FromFlat builds a matrix from column-major scalars.
func Matrix3x2FromFlat[E Float](flat [6]E) (m Matrix3x2[E]) {
	scatterFlat(m.column, 3, 2, flat[:])
	return m
}

// Matrix3x2FromNested builds a matrix from a [row][col] array.
func Matrix3x2FromNested[E Float](nested [2][3]E) (m Matrix3x2[E]) {
	scatterNested(m.column, 3, 2, func(r int) []E { return nested[r][:] })
	return m
}

// Columns returns the column vectors of m.
func (m Matrix3x2[E]) Columns() [3]Vector2[E] { return [3]Vector2[E](m) }

// Flat returns the elements of m in column-major order.
func (m Matrix3x2[E]) Flat() (flat [6]E) {
	gatherFlat(m.column, 3, 2, flat[:])
	return flat
}

// Nested returns the elements of m indexed [row][col].
func (m Matrix3x2[E]) Nested() (nested [2][3]E) {
	gatherNested(m.column, 3, 2, func(r int) []E { return nested[r][:] })
	return nested
}

// Layout returns the std140 alignment and size of a Matrix3x2.
func (m Matrix3x2[E]) Layout() Layout { return fromInfo(matrixInfo[E](3, 2)) }

// AppendStd140 appends the std140 encoding to dst.
func (m Matrix3x2[E]) AppendStd140(dst []byte) []byte {
	return appendMatrix(dst, m.column, 3, 2)
}

// UnmarshalStd140 decodes a Matrix3x2 from the start of src.
func (m *Matrix3x2[E]) UnmarshalStd140(src []byte) error {
	return decodeMatrix(src, m.column, 3, 2)
}

func (m *Matrix3x2[E]) column(c int) []E { return m[c][:] }

// Matrix3x3 is a matrix of 3 columns and 3 rows, GLSL mat3.
type Matrix3x3[E Float] [3]Vector3[E]

// NewMatrix3x3 assembles a matrix from its columns.
func NewMatrix3x3[E Float](cols [3]Vector3[E]) Matrix3x3[E] { return Matrix3x3[E](cols) }

// Matrix3x3FromFlat builds a matrix from column-major scalars.
func Matrix3x3FromFlat[E Float](flat [9]E) (m Matrix3x3[E]) {
	scatterFlat(m.column, 3, 3, flat[:])
	return m
}

// Matrix3x3FromNested builds a matrix from a [row][col] array.
func Matrix3x3FromNested[E Float](nested [3][3]E) (m Matrix3x3[E]) {
	scatterNested(m.column, 3, 3, func(r int) []E { return nested[r][:] })
	return m
}

// Columns returns the column vectors of m.
func (m Matrix3x3[E]) Columns() [3]Vector3[E] { return [3]Vector3[E](m) }

// Flat returns the elements of m in column-major order.
func (m Matrix3x3[E]) Flat() (flat [9]E) {
	gatherFlat(m.column, 3, 3, flat[:])
	return flat
}

// Nested returns the elements of m indexed [row][col].
func (m Matrix3x3[E]) Nested() (nested [3][3]E) {
	gatherNested(m.column, 3, 3, func(r int) []E { return nested[r][:] })
	return nested
}

// Layout returns the std140 alignment and size of a Matrix3x3.
func (m Matrix3x3[E]) Layout() Layout { return fromInfo(matrixInfo[E](3, 3)) }

// AppendStd140 appends the std140 encoding to dst.
func (m Matrix3x3[E]) AppendStd140(dst []byte) []byte {
	return appendMatrix(dst, m.column, 3, 3)
}

// UnmarshalStd140 decodes a Matrix3x3 from the start of src.
func (m *Matrix3x3[E]) UnmarshalStd140(src []byte) error {
	return decodeMatrix(src, m.column, 3, 3)
}

func (m *Matrix3x3[E]) column(c int) []E { return m[c][:] }

// Matrix3x4 is a matrix of 3 columns and 4 rows, GLSL mat3x4.
type Matrix3x4[E Float] [3]Vector4[E]

// NewMatrix3x4 assembles a matrix from its columns.
func NewMatrix3x4[E Float](cols [3]Vector4[E]) Matrix3x4[E] { return Matrix3x4[E](cols) }

// Matrix3x4FromFlat builds a matrix from column-major scalars.
func Matrix3x4FromFlat[E Float](flat [12]E) (m Matrix3x4[E]) {
	scatterFlat(m.column, 3, 4, flat[:])
	return m
}

// Matrix3x4FromNested builds a matrix from a [row][col] array.
func Matrix3x4FromNested[E Float](nested [4][3]E) (m Matrix3x4[E]) {
	scatterNested(m.column, 3, 4, func(r int) []E { return nested[r][:] })
	return m
}

// Columns returns the column vectors of m.
func (m Matrix3x4[E]) Columns() [3]Vector4[E] { return [3]Vector4[E](m) }

// Flat returns the elements of m in column-major order.
func (m Matrix3x4[E]) Flat() (flat [12]E) {
	gatherFlat(m.column, 3, 4, flat[:])
	return flat
}

// Nested returns the elements of m indexed [row][col].
func (m Matrix3x4[E]) Nested() (nested [4][3]E) {
	gatherNested(m.column, 3, 4, func(r int) []E { return nested[r][:] })
	return nested
}

// Layout returns the std140 alignment and size of a Matrix3x4.
func (m Matrix3x4[E]) Layout() Layout { return fromInfo(matrixInfo[E](3, 4)) }

// AppendStd140 appends the std140 encoding to dst.
func (m Matrix3x4[E]) AppendStd140(dst []byte) []byte {
	return appendMatrix(dst, m.column, 3, 4)
}

// UnmarshalStd140 decodes a Matrix3x4 from the start of src.
func (m *Matrix3x4[E]) UnmarshalStd140(src []byte) error {
	return decodeMatrix(src, m.column, 3, 4)
}

func (m *Matrix3x4[E]) column(c int) []E { return m[c][:] }

// Float matrices.
type (
	Mat3x2 = Matrix3x2[float32]
	Mat3x3 = Matrix3x3[float32]
	Mat3x4 = Matrix3x4[float32]
	Mat3   = Mat3x3
)

// Double matrices.
type (
	DMat3x2 = Matrix3x2[float64]
	DMat3x3 = Matrix3x3[float64]
	DMat3x4 = Matrix3x4[float64]
	DMat3   = DMat3x3
)
