// Package std140 provides vector and matrix types whose encoding matches
// the GLSL std140 uniform block layout.
//
// # Overview
//
// Every type reports its std140 [Layout] (base alignment and size) and
// appends its exact bytes, padding included, with AppendStd140. In host
// memory the types are plain fixed-size arrays:
//
//	v := std140.Vec3{0, 1, 2}          // vec3: align 16, size 12
//	m := std140.Matrix2x3FromFlat([6]float32{1, 2, 3, 4, 5, 6}) // mat2x3: align 16, size 32
//
// Padding inside aggregates is handled by the types. Padding between block
// members is either inserted by a [Writer] or declared by hand with the
// PadNFloat and PadNDouble blocks.
//
// # Matrices
//
// Matrix names follow GLSL: MatrixCxR has C columns and R rows and is
// stored as C column vectors. Matrices convert to and from a column-major
// flat array, a [row][col] nested array and an array of column vectors:
//
//	m := std140.Matrix2x3FromNested([3][2]float32{
//	    {1, 4},
//	    {2, 5},
//	    {3, 6},
//	})
//	m.Flat() // [1 2 3 4 5 6]
//
// # Arrays and dynamic offsets
//
// std140 arrays stride every element to 16 bytes; wrap elements in
// [ArrayMember]. Blocks selected with dynamic uniform offsets must start on
// 256-byte boundaries; wrap them in [DynamicOffsetMember] and encode the
// slice with [AppendSlice].
//
// # Example
//
// For the GLSL
//
//	layout(set = 0, binding = 0) uniform Block {
//	    mat4 mvp;
//	    vec3 position;
//	    vec3 normal;
//	    vec2 uv;
//	    int constants[3];
//	};
//
// the block is encoded as
//
//	var w std140.Writer
//	w.Write(mvp)      // offset 0
//	w.Write(position) // offset 64
//	w.Write(normal)   // offset 80
//	w.Write(uv)       // offset 96
//	for _, c := range constants {
//	    w.Write(std140.AsArrayMember(std140.Int32(c))) // offsets 112, 128, 144
//	}
//	buf := w.Bytes() // 160 bytes
//
// # Logging
//
// The package is silent by default. See [SetLogger].
package std140
