package std140

// Filler members for the gaps std140 leaves between block members.
//
// The library does not decide where padding is needed; append these
// between members yourself when encoding without a Writer, for example
// between two vec3 members where the second needs a fresh 16-byte slot:
//
//	buf = position.AppendStd140(buf)
//	buf = std140.NewPad1Float().AppendStd140(buf)
//	buf = color.AppendStd140(buf)
//
// Padding blocks align to a single byte so they never move the member
// that follows them.

// Pad1Float is 4 bytes of padding, the size of a single float, int or uint.
type Pad1Float [4]byte

// NewPad1Float returns zeroed padding.
func NewPad1Float() Pad1Float { return Pad1Float{} }

// Layout reports the padding size; padding has no alignment of its own.
func (Pad1Float) Layout() Layout { return Layout{Align: 1, Size: 4} }

// AppendStd140 appends the padding bytes.
func (p Pad1Float) AppendStd140(dst []byte) []byte { return append(dst, p[:]...) }

// Pad2Float is 8 bytes of padding, the size of two floats, ints or uints.
type Pad2Float [8]byte

// NewPad2Float returns zeroed padding.
func NewPad2Float() Pad2Float { return Pad2Float{} }

// Layout reports the padding size; padding has no alignment of its own.
func (Pad2Float) Layout() Layout { return Layout{Align: 1, Size: 8} }

// AppendStd140 appends the padding bytes.
func (p Pad2Float) AppendStd140(dst []byte) []byte { return append(dst, p[:]...) }

// Pad3Float is 12 bytes of padding, the size of three floats, ints or uints.
type Pad3Float [12]byte

// NewPad3Float returns zeroed padding.
func NewPad3Float() Pad3Float { return Pad3Float{} }

// Layout reports the padding size; padding has no alignment of its own.
func (Pad3Float) Layout() Layout { return Layout{Align: 1, Size: 12} }

// AppendStd140 appends the padding bytes.
func (p Pad3Float) AppendStd140(dst []byte) []byte { return append(dst, p[:]...) }

// Pad4Float is 16 bytes of padding, the size of four floats, ints or uints.
type Pad4Float [16]byte

// NewPad4Float returns zeroed padding.
func NewPad4Float() Pad4Float { return Pad4Float{} }

// Layout reports the padding size; padding has no alignment of its own.
func (Pad4Float) Layout() Layout { return Layout{Align: 1, Size: 16} }

// AppendStd140 appends the padding bytes.
func (p Pad4Float) AppendStd140(dst []byte) []byte { return append(dst, p[:]...) }

// Pad1Double is 8 bytes of padding, the size of a single double.
type Pad1Double [8]byte

// NewPad1Double returns zeroed padding.
func NewPad1Double() Pad1Double { return Pad1Double{} }

// Layout reports the padding size; padding has no alignment of its own.
func (Pad1Double) Layout() Layout { return Layout{Align: 1, Size: 8} }

// AppendStd140 appends the padding bytes.
func (p Pad1Double) AppendStd140(dst []byte) []byte { return append(dst, p[:]...) }

// Pad2Double is 16 bytes of padding, the size of two doubles.
type Pad2Double [16]byte

// NewPad2Double returns zeroed padding.
func NewPad2Double() Pad2Double { return Pad2Double{} }

// Layout reports the padding size; padding has no alignment of its own.
func (Pad2Double) Layout() Layout { return Layout{Align: 1, Size: 16} }

// AppendStd140 appends the padding bytes.
func (p Pad2Double) AppendStd140(dst []byte) []byte { return append(dst, p[:]...) }

// Pad3Double is 24 bytes of padding, the size of three doubles.
type Pad3Double [24]byte

// NewPad3Double returns zeroed padding.
func NewPad3Double() Pad3Double { return Pad3Double{} }

// Layout reports the padding size; padding has no alignment of its own.
func (Pad3Double) Layout() Layout { return Layout{Align: 1, Size: 24} }

// AppendStd140 appends the padding bytes.
func (p Pad3Double) AppendStd140(dst []byte) []byte { return append(dst, p[:]...) }

// Pad4Double is 32 bytes of padding, the size of four doubles.
type Pad4Double [32]byte

// NewPad4Double returns zeroed padding.
func NewPad4Double() Pad4Double { return Pad4Double{} }

// Layout reports the padding size; padding has no alignment of its own.
func (Pad4Double) Layout() Layout { return Layout{Align: 1, Size: 32} }

// AppendStd140 appends the padding bytes.
func (p Pad4Double) AppendStd140(dst []byte) []byte { return append(dst, p[:]...) }
