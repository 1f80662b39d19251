// Package blockfile loads YAML descriptions of std140 uniform blocks and
// resolves the offset of every member.
//
// A description lists members in declaration order:
//
//	name: Scene
//	members:
//	  - name: mvp
//	    type: mat4
//	  - name: lights
//	    count: 4
//	    members:
//	      - name: position
//	        type: vec3
//	      - name: intensity
//	        type: float
//
// A member with nested members is a struct; a positive count makes it an
// array.
package blockfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/std140"
)

// ErrInvalid is returned for descriptions that are well-formed YAML but
// do not describe a block.
var ErrInvalid = errors.New("blockfile: invalid block")

// Block is a uniform block description.
type Block struct {
	Name    string   `yaml:"name"`
	Members []Member `yaml:"members"`
}

// Member is one block or struct member.
type Member struct {
	Name    string   `yaml:"name"`
	Type    string   `yaml:"type,omitempty"`
	Count   int      `yaml:"count,omitempty"`
	Members []Member `yaml:"members,omitempty"`
}

// Field is a resolved member. Struct members produce a Field for the
// struct itself followed by Fields for its members, with dotted paths and
// offsets relative to the start of the block. Array element members are
// reported for element 0 only.
type Field struct {
	Path   string
	Type   string
	Offset int
	Align  int
	Size   int

	// Stride is the array element stride; zero for non-arrays.
	Stride int
	Count  int

	// Gap is the alignment padding between the previous sibling (or the
	// start of the enclosing struct) and this field.
	Gap int
}

// Parse decodes a block description.
func Parse(r io.Reader) (*Block, error) {
	var b Block
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("blockfile: decode: %w", err)
	}
	if len(b.Members) == 0 {
		return nil, fmt.Errorf("%w: %q has no members", ErrInvalid, b.Name)
	}
	return &b, nil
}

// Load reads and parses the description at path.
func Load(path string) (*Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("blockfile: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Resolve lays out the block and returns its fields and layout.
func (b *Block) Resolve() ([]Field, std140.Layout, error) {
	fields, l, err := resolveStruct(b.Members, "", 0)
	if err != nil {
		return nil, std140.Layout{}, err
	}
	std140.Logger().Debug("blockfile: resolved block",
		"name", b.Name,
		"fields", len(fields),
		"size", l.Size)
	return fields, l, nil
}

// resolveStruct lays out members starting at base. The returned fields
// carry absolute offsets; the layout is that of the struct itself.
func resolveStruct(members []Member, prefix string, base int) ([]Field, std140.Layout, error) {
	// First pass: member layouts, so StructLayout can place them.
	layouts := make([]std140.Layout, len(members))
	for i, m := range members {
		l, err := memberLayout(m, prefix)
		if err != nil {
			return nil, std140.Layout{}, err
		}
		layouts[i] = l
	}
	sl, offsets := std140.StructLayout(layouts...)

	var fields []Field
	end := base
	for i, m := range members {
		path := prefix + m.Name
		f := Field{
			Path:   path,
			Type:   typeName(m),
			Offset: base + offsets[i],
			Align:  layouts[i].Align,
			Size:   layouts[i].Size,
			Count:  m.Count,
			Gap:    base + offsets[i] - end,
		}
		end = f.Offset + f.Size
		if m.Count > 0 {
			f.Stride = layouts[i].Size / m.Count
		}
		fields = append(fields, f)
		if len(m.Members) > 0 {
			sub, _, err := resolveStruct(m.Members, path+".", f.Offset)
			if err != nil {
				return nil, std140.Layout{}, err
			}
			fields = append(fields, sub...)
		}
	}
	return fields, sl, nil
}

func memberLayout(m Member, prefix string) (std140.Layout, error) {
	if m.Name == "" {
		return std140.Layout{}, fmt.Errorf("%w: unnamed member in %q", ErrInvalid, prefix)
	}
	if m.Count < 0 {
		return std140.Layout{}, fmt.Errorf("%w: %s%s: negative count", ErrInvalid, prefix, m.Name)
	}
	var elem std140.Layout
	switch {
	case len(m.Members) > 0 && m.Type != "":
		return std140.Layout{}, fmt.Errorf("%w: %s%s: both type and members", ErrInvalid, prefix, m.Name)
	case len(m.Members) > 0:
		_, sl, err := resolveStruct(m.Members, prefix+m.Name+".", 0)
		if err != nil {
			return std140.Layout{}, err
		}
		elem = sl
	default:
		l, err := std140.TypeLayout(m.Type)
		if err != nil {
			return std140.Layout{}, fmt.Errorf("blockfile: %s%s: %w", prefix, m.Name, err)
		}
		elem = l
	}
	if m.Count > 0 {
		return std140.ArrayLayout(elem, m.Count), nil
	}
	return elem, nil
}

func typeName(m Member) string {
	name := m.Type
	if len(m.Members) > 0 {
		name = "struct"
	}
	if m.Count > 0 {
		name = fmt.Sprintf("%s[%d]", name, m.Count)
	}
	return name
}
