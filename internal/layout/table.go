// Package layout holds the std140 alignment and size table for scalars,
// vectors and matrices.
//
// The table is derived once from the per-length alignment factors and
// then served by index, so every caller sees the same constants.
package layout

// Info describes how a numeric aggregate is laid out in a std140 block.
type Info struct {
	// Align is the base alignment in bytes.
	Align int

	// Size is the number of bytes the aggregate occupies, padding included.
	Size int

	// ColumnStride is the distance between consecutive matrix columns.
	// For scalars and vectors it equals Size.
	ColumnStride int

	// Pad is the number of unused bytes inside Size.
	Pad int
}

// Supported scalar widths in bytes.
const (
	Width32 = 4
	Width64 = 8
)

// alignFactor maps a vector length to its alignment in scalars.
// A vec3 aligns like a vec4 but stays 3 scalars long.
var alignFactor = [5]int{0, 1, 2, 4, 4}

var (
	vectors  [2][5]Info
	matrices [2][5][5]Info
)

func init() {
	for wi, width := range [2]int{Width32, Width64} {
		for n := 1; n <= 4; n++ {
			vectors[wi][n] = deriveVector(width, n)
		}
		for cols := 2; cols <= 4; cols++ {
			for rows := 2; rows <= 4; rows++ {
				matrices[wi][cols][rows] = deriveMatrix(vectors[wi][rows], cols)
			}
		}
	}
}

func deriveVector(width, n int) Info {
	size := n * width
	return Info{Align: alignFactor[n] * width, Size: size, ColumnStride: size}
}

func deriveMatrix(col Info, cols int) Info {
	stride := RoundUp(col.Size, col.Align)
	return Info{
		Align:        col.Align,
		Size:         cols * stride,
		ColumnStride: stride,
		Pad:          cols * (stride - col.Size),
	}
}

// RoundUp rounds n up to the next multiple of align.
// An align of zero or one returns n unchanged.
func RoundUp(n, align int) int {
	if align <= 1 {
		return n
	}
	return (n + align - 1) / align * align
}

func widthIndex(width int) (int, bool) {
	switch width {
	case Width32:
		return 0, true
	case Width64:
		return 1, true
	}
	return 0, false
}

// Vector returns the layout of an n-element vector of width-byte scalars.
// n == 1 is the bare scalar.
func Vector(width, n int) (Info, bool) {
	wi, ok := widthIndex(width)
	if !ok || n < 1 || n > 4 {
		return Info{}, false
	}
	return vectors[wi][n], true
}

// Matrix returns the layout of a matrix with cols columns and rows rows.
func Matrix(width, cols, rows int) (Info, bool) {
	wi, ok := widthIndex(width)
	if !ok || cols < 2 || cols > 4 || rows < 2 || rows > 4 {
		return Info{}, false
	}
	return matrices[wi][cols][rows], true
}

// Array returns the layout of an n-element array of elem using the
// std140 array rule: element alignment is at least minAlign and the
// stride is the element size rounded up to that alignment.
func Array(elem Info, n, minAlign int) Info {
	align := max(elem.Align, minAlign)
	stride := RoundUp(elem.Size, align)
	return Info{
		Align:        align,
		Size:         n * stride,
		ColumnStride: stride,
		Pad:          n * (stride - elem.Size),
	}
}
