package std140

// Matrix2x2 is a matrix of 2 columns and 2 rows, GLSL mat2.
type Matrix2x2[E Float] [2]Vector2[E]

// NewMatrix2x2 assembles a matrix from its columns.
func NewMatrix2x2[E Float](cols [2]Vector2[E]) Matrix2x2[E] { return Matrix2x2[E](cols) }

// Matrix2x2FromFlat builds a matrix from column-major scalars.
func Matrix2x2FromFlat[E Float](flat [4]E) (m Matrix2x2[E]) {
	scatterFlat(m.column, 2, 2, flat[:])
	return m
}

// Matrix2x2FromNested builds a matrix from a [row][col] array.
func Matrix2x2FromNested[E Float](nested [2][2]E) (m Matrix2x2[E]) {
	scatterNested(m.column, 2, 2, func(r int) []E { return nested[r][:] })
	return m
}

// Columns returns the column vectors of m.
func (m Matrix2x2[E]) Columns() [2]Vector2[E] { return [2]Vector2[E](m) }

// Flat returns the elements of m in column-major order.
func (m Matrix2x2[E]) Flat() (flat [4]E) {
	gatherFlat(m.column, 2, 2, flat[:])
	return flat
}

// Nested returns the elements of m indexed [row][col].
func (m Matrix2x2[E]) Nested() (nested [2][2]E) {
	gatherNested(m.column, 2, 2, func(r int) []E { return nested[r][:] })
	return nested
}

// Layout returns the std140 alignment and size of a Matrix2x2.
func (m Matrix2x2[E]) Layout() Layout { return fromInfo(matrixInfo[E](2, 2)) }

// AppendStd140 appends the std140 encoding to dst.
func (m Matrix2x2[E]) AppendStd140(dst []byte) []byte {
	return appendMatrix(dst, m.column, 2, 2)
}

// UnmarshalStd140 decodes a Matrix2x2 from the start of src.
func (m *Matrix2x2[E]) UnmarshalStd140(src []byte) error {
	return decodeMatrix(src, m.column, 2, 2)
}

func (m *Matrix2x2[E]) column(c int) []E { return m[c][:] }

// Matrix2x3 is a matrix of 2 columns and 3 rows, GLSL mat2x3.
type Matrix2x3[E Float] [2]Vector3[E]

// NewMatrix2x3 assembles a matrix from its columns.
func NewMatrix2x3[E Float](cols [2]Vector3[E]) Matrix2x3[E] { return Matrix2x3[E](cols) }

// Matrix2x3FromFlat builds a matrix from column-major scalars.
func Matrix2x3FromFlat[E Float](flat [6]E) (m Matrix2x3[E]) {
	scatterFlat(m.column, 2, 3, flat[:])
	return m
}

// Matrix2x3FromNested builds a matrix from a [row][col] array.
func Matrix2x3FromNested[E Float](nested [3][2]E) (m Matrix2x3[E]) {
	scatterNested(m.column, 2, 3, func(r int) []E { return nested[r][:] })
	return m
}

// Columns returns the column vectors of m.
func (m Matrix2x3[E]) Columns() [2]Vector3[E] { return [2]Vector3[E](m) }

// Flat returns the elements of m in column-major order.
func (m Matrix2x3[E]) Flat() (flat [6]E) {
	gatherFlat(m.column, 2, 3, flat[:])
	return flat
}

// Nested returns the elements of m indexed [row][col].
func (m Matrix2x3[E]) Nested() (nested [3][2]E) {
	gatherNested(m.column, 2, 3, func(r int) []E { return nested[r][:] })
	return nested
}

// Layout returns the std140 alignment and size of a Matrix2x3.
func (m Matrix2x3[E]) Layout() Layout { return fromInfo(matrixInfo[E](2, 3)) }

// AppendStd140 appends the std140 encoding to dst.
func (m Matrix2x3[E]) AppendStd140(dst []byte) []byte {
	return appendMatrix(dst, m.column, 2, 3)
}

// UnmarshalStd140 decodes a Matrix2x3 from the start of src.
func (m *Matrix2x3[E]) UnmarshalStd140(src []byte) error {
	return decodeMatrix(src, m.column, 2, 3)
}

func (m *Matrix2x3[E]) column(c int) []E { return m[c][:] }

// Matrix2x4 is a matrix of 2 columns and 4 rows, GLSL mat2x4.
type Matrix2x4[E Float] [2]Vector4[E]

// NewMatrix2x4 assembles a matrix from its columns.
func NewMatrix2x4[E Float](cols [2]Vector4[E]) Matrix2x4[E] { return Matrix2x4[E](cols) }

// Matrix2x4FromFlat builds a matrix from column-major scalars.
func Matrix2x4FromFlat[E Float](flat [8]E) (m Matrix2x4[E]) {
	scatterFlat(m.column, 2, 4, flat[:])
	return m
}

// Matrix2x4FromNested builds a matrix from a [row][col] array.
func Matrix2x4FromNested[E Float](nested [4][2]E) (m Matrix2x4[E]) {
	scatterNested(m.column, 2, 4, func(r int) []E { return nested[r][:] })
	return m
}

// Columns returns the column vectors of m.
func (m Matrix2x4[E]) Columns() [2]Vector4[E] { return [2]Vector4[E](m) }

// Flat returns the elements of m in column-major order.
func (m Matrix2x4[E]) Flat() (flat [8]E) {
	gatherFlat(m.column, 2, 4, flat[:])
	return flat
}

// Nested returns the elements of m indexed [row][col].
func (m Matrix2x4[E]) Nested() (nested [4][2]E) {
	gatherNested(m.column, 2, 4, func(r int) []E { return nested[r][:] })
	return nested
}

// Layout returns the std140 alignment and size of a Matrix2x4.
func (m Matrix2x4[E]) Layout() Layout { return fromInfo(matrixInfo[E](2, 4)) }

// AppendStd140 appends the std140 encoding to dst.
func (m Matrix2x4[E]) AppendStd140(dst []byte) []byte {
	return appendMatrix(dst, m.column, 2, 4)
}

// UnmarshalStd140 decodes a Matrix2x4 from the start of src.
func (m *Matrix2x4[E]) UnmarshalStd140(src []byte) error {
	return decodeMatrix(src, m.column, 2, 4)
}

func (m *Matrix2x4[E]) column(c int) []E { return m[c][:] }

// Float matrices.
type (
	Mat2x2 = Matrix2x2[float32]
	Mat2x3 = Matrix2x3[float32]
	Mat2x4 = Matrix2x4[float32]
	Mat2   = Mat2x2
)

// Double matrices.
type (
	DMat2x2 = Matrix2x2[float64]
	DMat2x3 = Matrix2x3[float64]
	DMat2x4 = Matrix2x4[float64]
	DMat2   = DMat2x2
)
