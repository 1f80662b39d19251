package blockfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/std140"
)

const sceneYAML = `
name: Scene
members:
  - name: mvp
    type: mat4
  - name: position
    type: vec3
  - name: normal
    type: vec3
  - name: uv
    type: vec2
  - name: constants
    type: int
    count: 3
`

func TestResolveScene(t *testing.T) {
	b, err := Parse(strings.NewReader(sceneYAML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	fields, l, err := b.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	want := []Field{
		{Path: "mvp", Type: "mat4", Offset: 0, Align: 16, Size: 64},
		{Path: "position", Type: "vec3", Offset: 64, Align: 16, Size: 12},
		{Path: "normal", Type: "vec3", Offset: 80, Align: 16, Size: 12, Gap: 4},
		{Path: "uv", Type: "vec2", Offset: 96, Align: 8, Size: 8, Gap: 4},
		{Path: "constants", Type: "int[3]", Offset: 112, Align: 16, Size: 48, Stride: 16, Count: 3, Gap: 8},
	}
	if len(fields) != len(want) {
		t.Fatalf("Resolve() returned %d fields, want %d", len(fields), len(want))
	}
	for i := range want {
		if fields[i] != want[i] {
			t.Errorf("field %d = %+v, want %+v", i, fields[i], want[i])
		}
	}
	if l != (std140.Layout{Align: 16, Size: 160}) {
		t.Errorf("block layout = %v, want align=16 size=160", l)
	}
}

func TestResolveNestedStructArray(t *testing.T) {
	src := `
name: Lights
members:
  - name: count
    type: uint
  - name: lights
    count: 2
    members:
      - name: position
        type: vec3
      - name: intensity
        type: float
`
	b, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	fields, l, err := b.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	byPath := map[string]Field{}
	for _, f := range fields {
		byPath[f.Path] = f
	}
	if f := byPath["lights"]; f.Offset != 16 || f.Stride != 16 || f.Size != 32 || f.Type != "struct[2]" {
		t.Errorf("lights = %+v, want offset 16, stride 16, size 32", f)
	}
	if f := byPath["lights.intensity"]; f.Offset != 28 {
		t.Errorf("lights.intensity offset = %d, want 28", f.Offset)
	}
	if l.Size != 48 {
		t.Errorf("block size = %d, want 48", l.Size)
	}
}

func TestResolveUnknownType(t *testing.T) {
	b, err := Parse(strings.NewReader("name: X\nmembers:\n  - name: flag\n    type: bool\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, _, err := b.Resolve(); !errors.Is(err, std140.ErrUnknownType) {
		t.Errorf("Resolve() error = %v, want ErrUnknownType", err)
	}
}

func TestInvalidBlocks(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"no members", "name: Empty\n"},
		{"unnamed member", "name: X\nmembers:\n  - type: float\n"},
		{"negative count", "name: X\nmembers:\n  - name: a\n    type: float\n    count: -1\n"},
		{"type and members", "name: X\nmembers:\n  - name: a\n    type: float\n    members:\n      - name: b\n        type: float\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Parse(strings.NewReader(tt.src))
			if err == nil {
				_, _, err = b.Resolve()
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParseUnknownField(t *testing.T) {
	if _, err := Parse(strings.NewReader("name: X\nmembrs: []\n")); err == nil {
		t.Error("Parse() accepted an unknown field")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(sceneYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if b.Name != "Scene" || len(b.Members) != 5 {
		t.Errorf("Load() = %+v", b)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
}
