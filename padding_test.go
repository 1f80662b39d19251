package std140

import "testing"

func TestPaddingSizes(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		size int
	}{
		{"Pad1Float", NewPad1Float(), 4},
		{"Pad2Float", NewPad2Float(), 8},
		{"Pad3Float", NewPad3Float(), 12},
		{"Pad4Float", NewPad4Float(), 16},
		{"Pad1Double", NewPad1Double(), 8},
		{"Pad2Double", NewPad2Double(), 16},
		{"Pad3Double", NewPad3Double(), 24},
		{"Pad4Double", NewPad4Double(), 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if l := tt.v.Layout(); l.Size != tt.size || l.Align != 1 {
				t.Errorf("Layout() = %v, want align=1 size=%d", l, tt.size)
			}
			buf := tt.v.AppendStd140(nil)
			if len(buf) != tt.size {
				t.Fatalf("AppendStd140 wrote %d bytes, want %d", len(buf), tt.size)
			}
			for i, b := range buf {
				if b != 0 {
					t.Errorf("byte %d = %#x, want 0", i, b)
				}
			}
		})
	}
}

func TestPaddingFillsVec3Gap(t *testing.T) {
	// vec3 position; <pad>; vec3 color;
	var w Writer
	w.Write(Vec3{1, 2, 3})
	w.Write(NewPad1Float())
	if off := w.Write(Vec3{4, 5, 6}); off != 16 {
		t.Errorf("second vec3 at offset %d, want 16", off)
	}
}

func TestPaddingEquality(t *testing.T) {
	if NewPad3Double() != (Pad3Double{}) {
		t.Error("NewPad3Double() is not the zero value")
	}
}
