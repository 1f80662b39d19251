package std140

// Matrices are stored as an array of column vectors, GLSL matCxR order:
// MatrixCxR has C columns of R rows each.
//
// Three host forms convert to and from a matrix:
//
//   - flat, [C*R]E, column-major: elements [c*R, c*R+R) are column c
//   - nested, [R][C]E, indexed [row][col]
//   - columns, [C]VectorR[E]
//
// The conversions below are explicit element gathers. None of them
// reinterpret memory, because the encoded column stride carries padding
// that the flat and nested forms do not.

// In the helpers below col(c) returns column c of a matrix as a mutable
// slice of its rows, and nested(r) returns row r of a [row][col] array.

func scatterFlat[E Float](col func(c int) []E, cols, rows int, flat []E) {
	for c := range cols {
		copy(col(c), flat[c*rows:c*rows+rows])
	}
}

func gatherFlat[E Float](col func(c int) []E, cols, rows int, flat []E) {
	for c := range cols {
		copy(flat[c*rows:c*rows+rows], col(c))
	}
}

func scatterNested[E Float](col func(c int) []E, cols, rows int, nested func(r int) []E) {
	for r := range rows {
		src := nested(r)
		for c := range cols {
			col(c)[r] = src[c]
		}
	}
}

func gatherNested[E Float](col func(c int) []E, cols, rows int, nested func(r int) []E) {
	for r := range rows {
		dst := nested(r)
		for c := range cols {
			dst[c] = col(c)[r]
		}
	}
}

// appendMatrix writes each column followed by the zero padding that
// brings it to the column stride.
func appendMatrix[E Float](dst []byte, col func(c int) []E, cols, rows int) []byte {
	info := matrixInfo[E](cols, rows)
	pad := info.ColumnStride - rows*KindOf[E]().Size()
	for c := range cols {
		dst = appendScalars(dst, col(c))
		dst = appendZeros(dst, pad)
	}
	return dst
}

func decodeMatrix[E Float](src []byte, col func(c int) []E, cols, rows int) error {
	info := matrixInfo[E](cols, rows)
	if err := checkLen(src, fromInfo(info)); err != nil {
		return err
	}
	for c := range cols {
		decodeScalars(src[c*info.ColumnStride:], col(c))
	}
	return nil
}
