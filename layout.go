package std140

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/std140/internal/layout"
)

// Minimum alignments imposed by the std140 array rule and by dynamic
// uniform buffer offsets.
const (
	ArrayAlign         = 16
	DynamicOffsetAlign = 256
)

// Layout is the std140 placement of a value: the offset it must start at
// is a multiple of Align, and it occupies Size bytes.
type Layout struct {
	Align int
	Size  int
}

// Stride returns the distance between consecutive values of this layout
// in a tightly packed array.
func (l Layout) Stride() int {
	return layout.RoundUp(l.Size, l.Align)
}

// String returns "align=A size=S".
func (l Layout) String() string {
	return fmt.Sprintf("align=%d size=%d", l.Align, l.Size)
}

func fromInfo(info layout.Info) Layout {
	return Layout{Align: info.Align, Size: info.Size}
}

// Value is implemented by every type that can be placed in a std140 block.
//
// AppendStd140 must append exactly Layout().Size bytes.
type Value interface {
	Layout() Layout
	AppendStd140(dst []byte) []byte
}

// vectorLayout is VectorLayout for callers that already know the shape is valid.
func vectorLayout(k Kind, n int) Layout {
	info, _ := layout.Vector(k.Size(), n)
	return fromInfo(info)
}

func matrixInfo[E Float](cols, rows int) layout.Info {
	info, _ := layout.Matrix(KindOf[E]().Size(), cols, rows)
	return info
}

// VectorLayout returns the layout of an n-component vector of kind k.
// n == 1 is the bare scalar.
func VectorLayout(k Kind, n int) (Layout, error) {
	info, ok := layout.Vector(k.Size(), n)
	if !ok || !k.valid() {
		return Layout{}, fmt.Errorf("%w: %s vector of %d components", ErrUnsupportedShape, k, n)
	}
	return fromInfo(info), nil
}

// MatrixLayout returns the layout of a matrix of kind k with cols columns
// and rows rows. Only float and double matrices exist.
func MatrixLayout(k Kind, cols, rows int) (Layout, error) {
	if k != KindFloat32 && k != KindFloat64 {
		return Layout{}, fmt.Errorf("%w: %s matrix", ErrUnsupportedShape, k)
	}
	info, ok := layout.Matrix(k.Size(), cols, rows)
	if !ok {
		return Layout{}, fmt.Errorf("%w: %dx%d matrix", ErrUnsupportedShape, cols, rows)
	}
	return fromInfo(info), nil
}

// ArrayLayout returns the layout of an n-element array of elem.
// Elements are aligned to at least 16 bytes and strided by their size
// rounded up to that alignment.
func ArrayLayout(elem Layout, n int) Layout {
	return fromInfo(layout.Array(layout.Info{Align: elem.Align, Size: elem.Size}, n, ArrayAlign))
}

// StructLayout places members in order and returns the layout of the
// enclosing struct together with the offset of each member. The struct
// alignment is the largest member alignment rounded up to 16, and its size
// is rounded up to that alignment.
func StructLayout(members ...Layout) (Layout, []int) {
	offsets := make([]int, len(members))
	end, align := 0, 1
	for i, m := range members {
		offsets[i] = layout.RoundUp(end, m.Align)
		end = offsets[i] + m.Size
		align = max(align, m.Align)
	}
	align = layout.RoundUp(align, ArrayAlign)
	return Layout{Align: align, Size: layout.RoundUp(end, align)}, offsets
}

// TypeName returns the GLSL name of a vector (n 2..4) or scalar (n 1) of kind k.
func TypeName(k Kind, n int) string {
	if n == 1 {
		return k.String()
	}
	return k.prefix() + "vec" + strconv.Itoa(n)
}

// MatrixTypeName returns the GLSL name of a matrix, using the short
// square form ("mat3") when cols == rows.
func MatrixTypeName(k Kind, cols, rows int) string {
	if cols == rows {
		return k.prefix() + "mat" + strconv.Itoa(cols)
	}
	return k.prefix() + "mat" + strconv.Itoa(cols) + "x" + strconv.Itoa(rows)
}

var scalarNames = map[string]Kind{
	"float":  KindFloat32,
	"double": KindFloat64,
	"int":    KindInt32,
	"uint":   KindUint32,
}

var prefixKinds = map[string]Kind{
	"":  KindFloat32,
	"d": KindFloat64,
	"i": KindInt32,
	"u": KindUint32,
}

// TypeLayout returns the layout of a GLSL scalar, vector or matrix type
// given by name, such as "float", "uvec3", "mat4" or "dmat2x3".
func TypeLayout(name string) (Layout, error) {
	if k, ok := scalarNames[name]; ok {
		return vectorLayout(k, 1), nil
	}
	if i := strings.Index(name, "vec"); i >= 0 && i <= 1 {
		k, ok := prefixKinds[name[:i]]
		n, dimOK := parseDim(name[i+3:])
		if !ok || !dimOK {
			return Layout{}, fmt.Errorf("%w: %q", ErrUnknownType, name)
		}
		return vectorLayout(k, n), nil
	}
	if i := strings.Index(name, "mat"); i >= 0 && i <= 1 {
		k, ok := prefixKinds[name[:i]]
		if !ok || (k != KindFloat32 && k != KindFloat64) {
			return Layout{}, fmt.Errorf("%w: %q", ErrUnknownType, name)
		}
		cols, rows, ok := parseDims(name[i+3:])
		if !ok {
			return Layout{}, fmt.Errorf("%w: %q", ErrUnknownType, name)
		}
		l, err := MatrixLayout(k, cols, rows)
		if err != nil {
			return Layout{}, fmt.Errorf("%w: %q", ErrUnknownType, name)
		}
		return l, nil
	}
	return Layout{}, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// parseDims parses "C" or "CxR".
func parseDims(s string) (cols, rows int, ok bool) {
	c, r, found := strings.Cut(s, "x")
	if cols, ok = parseDim(c); !ok {
		return 0, 0, false
	}
	if !found {
		return cols, cols, true
	}
	if rows, ok = parseDim(r); !ok {
		return 0, 0, false
	}
	return cols, rows, true
}

// parseDim accepts exactly one digit in 2..4.
func parseDim(s string) (int, bool) {
	if len(s) != 1 || s[0] < '2' || s[0] > '4' {
		return 0, false
	}
	return int(s[0] - '0'), true
}
